// Package cli implements the command line interface for scribe.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scribe-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// rootCmd represents the base command when called without any subcommands.
// Running scribe with no arguments opens the editor.
var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "A collaborative text editor with an AI assistant",
	Long: `Scribe is a terminal text editor with an AI assistant pane.

Select text in the document pane to get rewrite suggestions, or chat
with the assistant to draft text, search the web, or fetch the news.

Controls:
  tab      - Switch between editor and assistant
  v        - Start a selection in the editor
  enter    - Confirm / send
  esc      - Cancel / dismiss
  ctrl+c   - Quit`,
	RunE: runEdit,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.scribe)")

	cobra.OnInitialize(func() {
		logger.SetVerbose(verbose)
	})
}

// resolveConfigDir returns the configuration directory, creating it if needed.
func resolveConfigDir() (string, error) {
	dir := configDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".scribe")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
