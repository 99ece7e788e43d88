// Package config reads the optional buzz.yaml project file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/buzzkit/buzz/pkg/core"
	"github.com/buzzkit/buzz/pkg/graphics"
	"github.com/buzzkit/buzz/pkg/surface"
	"github.com/buzzkit/buzz/pkg/theme"
)

// FileName is the name of the project file.
const FileName = "buzz.yaml"

// Config represents the optional buzz.yaml configuration.
type Config struct {
	App   AppConfig   `yaml:"app"`
	Theme ThemeConfig `yaml:"theme"`
	Debug string      `yaml:"debug,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name  string `yaml:"name,omitempty"`
	Entry string `yaml:"entry,omitempty"`
}

// ThemeConfig contains theme overrides.
type ThemeConfig struct {
	Brightness string `yaml:"brightness,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Entry      string
	Theme      *theme.ThemeData
	DebugLevel core.DebugLevel
}

// LoadOptional reads buzz.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads buzz.yaml (if present) and resolves defaults. A go.mod in
// dir is optional; when present its module path names the app.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	entry := strings.TrimSpace(cfg.App.Entry)
	if entry == "" {
		entry = "app.yaml"
	}

	td, err := resolveTheme(cfg.Theme)
	if err != nil {
		return nil, err
	}

	level, err := core.ParseDebugLevel(strings.TrimSpace(cfg.Debug))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FileName, err)
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Entry:      entry,
		Theme:      td,
		DebugLevel: level,
	}, nil
}

// Context builds a render context for the resolved project.
func (r *Resolved) Context(provider surface.Provider) *core.Context {
	ctx := core.NewContext(provider)
	ctx.Theme = r.Theme
	ctx.DebugLevel = r.DebugLevel
	ctx.Logger = log.New(os.Stderr, "buzz: ", log.LstdFlags)
	return ctx
}

// EntryPath returns the absolute path of the entry document.
func (r *Resolved) EntryPath() string {
	if filepath.IsAbs(r.Entry) {
		return r.Entry
	}
	return filepath.Join(r.Root, r.Entry)
}

// FindProjectRoot walks up from the current directory to find buzz.yaml or
// go.mod. It falls back to the current directory.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := start
	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

func resolveTheme(cfg ThemeConfig) (*theme.ThemeData, error) {
	var td *theme.ThemeData
	switch strings.TrimSpace(cfg.Brightness) {
	case "", "light":
		td = theme.DefaultLightTheme()
	case "dark":
		td = theme.DefaultDarkTheme()
	default:
		return nil, fmt.Errorf("%s: unknown brightness %q", FileName, cfg.Brightness)
	}
	if bg := strings.TrimSpace(cfg.Background); bg != "" {
		c, err := graphics.ParseColor(bg)
		if err != nil {
			return nil, fmt.Errorf("%s: theme background: %w", FileName, err)
		}
		td = td.CopyWith(c)
	}
	return td, nil
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			if len(parts) > 0 {
				base = parts[len(parts)-1]
			}
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "buzz_app"
	}
	return base
}
