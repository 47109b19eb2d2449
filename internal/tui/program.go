package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/castdex/castdex/internal/config"
	"github.com/castdex/castdex/internal/directory"
)

// Run launches the interactive roster builder and blocks until the user
// quits.
func Run(prefs *config.Preferences) error {
	client := directory.NewClient()
	if prefs.DirectoryBaseURL != "" {
		client = directory.NewClientWithURL(prefs.DirectoryBaseURL)
	}
	client.SetTimeout(prefs.Timeout())

	p := tea.NewProgram(
		NewModel(client, prefs),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive screen: %w", err)
	}

	return nil
}
