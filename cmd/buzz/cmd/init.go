package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buzzkit/buzz/cmd/buzz/internal/config"
	"github.com/buzzkit/buzz/cmd/buzz/internal/templates"
)

func init() {
	RegisterCommand(&cobra.Command{
		Use:   "init <directory>",
		Short: "Create a new buzz project",
		Long: `Create a new buzz project in a new directory.

This command creates:
  - A new directory at the specified path
  - buzz.yaml with the project settings
  - app.yaml with a starter widget tree

The app name is derived from the directory basename.

Examples:
  buzz init myapp
  buzz init ./projects/myapp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.OutOrStdout(), args[0])
		},
	})
}

// runInit creates a new project. The app name is the directory's basename.
func runInit(out io.Writer, raw string) error {
	if strings.HasPrefix(raw, "~") {
		return fmt.Errorf("tilde (~) is not expanded by buzz; use an absolute path or $HOME instead")
	}

	dir := filepath.Clean(raw)
	if err := validateDirectory(dir); err != nil {
		return err
	}

	appName := filepath.Base(dir)
	if err := validateAppName(appName); err != nil {
		return fmt.Errorf("invalid app name %q (derived from directory basename): %w", appName, err)
	}

	if err := scaffoldProject(out, dir, appName); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Project created successfully!\n\n")
	fmt.Fprintf(out, "Next steps:\n")
	fmt.Fprintf(out, "  cd %s\n", dir)
	fmt.Fprintf(out, "  buzz render --watch\n")
	return nil
}

// scaffoldProject creates the project directory and writes the template
// files.
func scaffoldProject(out io.Writer, dir, appName string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	fmt.Fprintf(out, "Creating new buzz project: %s\n", appName)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data := templates.InitData{AppName: appName}
	initFiles := []struct {
		templatePath string
		destName     string
	}{
		{"init/buzz.yaml.tmpl", config.FileName},
		{"init/app.yaml.tmpl", "app.yaml"},
	}

	for _, f := range initFiles {
		content, err := templates.Render(f.templatePath, data)
		if err != nil {
			safeRemoveAll(dir)
			return fmt.Errorf("failed to render template %s: %w", f.templatePath, err)
		}
		if err := os.WriteFile(filepath.Join(dir, f.destName), []byte(content), 0o644); err != nil {
			safeRemoveAll(dir)
			return fmt.Errorf("failed to write %s: %w", f.destName, err)
		}
		fmt.Fprintf(out, "  Created %s\n", f.destName)
	}

	return nil
}

// validateDirectory rejects directory paths that would be dangerous to
// create or clean up: filesystem roots, the current or parent directory,
// and root-level absolute paths such as /etc.
func validateDirectory(dir string) error {
	switch dir {
	case "", "/", ".", "..":
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if isVolumeRoot(dir) {
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if filepath.IsAbs(dir) && isVolumeRoot(filepath.Dir(dir)) {
		return fmt.Errorf("refusing to create project at root-level path %q", dir)
	}
	return nil
}

// isVolumeRoot reports whether dir is a filesystem root.
func isVolumeRoot(dir string) bool {
	return dir == filepath.VolumeName(dir)+string(filepath.Separator)
}

// safeRemoveAll removes a directory only if the path passes
// validateDirectory.
func safeRemoveAll(dir string) {
	if validateDirectory(dir) != nil {
		return
	}
	os.RemoveAll(dir)
}

var validAppName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

func validateAppName(name string) error {
	if name == "" {
		return fmt.Errorf("app name cannot be empty")
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("app name cannot start with a dot")
	}
	if !validAppName.MatchString(name) {
		return fmt.Errorf("app name must start with a letter and contain only letters, numbers, underscores, and hyphens")
	}
	return nil
}
