// Castdex is a terminal roster builder for Rick and Morty characters.
//
// It searches the public character directory as you type, lets you pick
// candidates with the keyboard or mouse, and accumulates picks into a
// roster. A non-interactive search command is available for scripting.
//
// Usage:
//
//	castdex [command] [flags]
//
// Running without arguments launches the interactive roster builder.
// See 'castdex --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/castdex/castdex/internal/config"
	"github.com/castdex/castdex/internal/logging"
	"github.com/castdex/castdex/internal/tui"
	"github.com/castdex/castdex/internal/version"
)

func main() {
	logging.InitializeFromEnv()
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "castdex",
	Short: "Rick and Morty character roster builder",
	Long: `A terminal roster builder for Rick and Morty characters.

Searches the public character directory as you type, with keyboard and
mouse selection, provisional picks, and a committed roster.

If no command is specified, the interactive screen launches automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := config.LoadPreferences()
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}
		return tui.Run(prefs)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
