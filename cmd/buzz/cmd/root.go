// Package cmd implements the buzz CLI commands.
//
// Each command lives in its own file and registers itself with the root
// command from init.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/buzzkit/buzz/cmd/buzz/internal/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var projectDir string

var rootCmd = &cobra.Command{
	Use:   "buzz",
	Short: "Buzz - declarative widget trees rendered to markup",
	Long: `Buzz builds widget trees from YAML documents, renders them through
the widget lifecycle and prints the resulting surface tree as HTML.

Use "buzz <command> --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", "", "project directory (default: nearest directory with buzz.yaml or go.mod)")
}

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return rootCmd.Execute()
}

// resolveProject loads the project configuration for the selected
// directory.
func resolveProject() (*config.Resolved, error) {
	dir := projectDir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return nil, err
		}
		dir = root
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, err
	}
	return config.Resolve(abs)
}
