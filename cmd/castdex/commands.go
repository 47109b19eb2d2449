package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/castdex/castdex/internal/config"
	"github.com/castdex/castdex/internal/directory"
)

// Command flags
var (
	baseURL      string
	outputFormat string
	initPrefs    bool
)

func init() {
	searchCmd.Flags().StringVar(&baseURL, "base-url", "", "Directory base URL (overrides preferences)")
	searchCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
	configCmd.Flags().BoolVar(&initPrefs, "init", false, "Write the preference file with defaults if none exists")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(configCmd)
}

// searchCmd runs one directory search without the interactive screen
var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search the character directory",
	Long: `Search the character directory by name and print the matches.

The name is matched as a case-insensitive substring, the same way the
interactive screen matches while you type.`,
	Example: `  # Detailed listing
  castdex search rick

  # One line per character
  castdex search "birdperson" --format compact

  # JSON output for scripting
  castdex search morty --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	prefs, err := config.LoadPreferences()
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	client := directory.NewClient()
	if baseURL != "" {
		client = directory.NewClientWithURL(baseURL)
	} else if prefs.DirectoryBaseURL != "" {
		client = directory.NewClientWithURL(prefs.DirectoryBaseURL)
	}
	client.SetTimeout(prefs.Timeout())

	results, err := client.Search(args[0])
	if err != nil {
		return fmt.Errorf("search failed: %s", directory.GetShortErrorMessage(err))
	}

	switch outputFormat {
	case "compact":
		fmt.Print(directory.FormatCompact(results))
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "detailed":
		fallthrough
	default:
		printRule()
		fmt.Print(directory.FormatDetailed(results))
		printRule()
	}

	return nil
}

// configCmd shows or initializes the preference file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show preference file location and active values",
	Long: `Show where castdex reads its preferences from and the values in effect.

With --init, a preference file with the current values is written if
none exists yet, so it can be edited by hand.`,
	Example: `  # Show the active preferences
  castdex config

  # Create the preference file for editing
  castdex config --init`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	prefs, err := config.LoadPreferences()
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	if initPrefs {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Preference file already exists: %s\n\n", path)
		} else {
			if err := prefs.Save(); err != nil {
				return fmt.Errorf("failed to write preference file: %w", err)
			}
			fmt.Printf("Wrote preference file: %s\n\n", path)
		}
	} else {
		fmt.Printf("Preference file: %s\n\n", path)
	}

	base := prefs.DirectoryBaseURL
	if base == "" {
		base = "(default)"
	}
	fmt.Printf("  Directory base URL: %s\n", base)
	fmt.Printf("  Debounce:           %s\n", prefs.Debounce())
	fmt.Printf("  Request timeout:    %s\n", prefs.Timeout())
	fmt.Printf("  Visible rows:       %d\n", prefs.VisibleRows())

	return nil
}

// printRule prints a horizontal rule sized to the terminal. Piped output
// gets a fixed-width rule instead.
func printRule() {
	width := 60
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 && w < width {
			width = w
		}
	}
	fmt.Println(strings.Repeat("-", width))
}
