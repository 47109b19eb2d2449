package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Application branding constants
const (
	AppName = "CASTDEX"
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#36C3A7") // Portal green
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#F5C242") // Yellow
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#36C3A7") // Portal green
	HighlightColor = lipgloss.Color("#F5C242") // Yellow
)

// Common styles
var (
	// Title style. No margins: the view composes spacing itself so the
	// mouse hit-testing row math stays exact.
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Candidate row (unselected)
	RowStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	// Candidate row (highlighted by keyboard or mouse)
	HighlightedRowStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Foreground(SecondaryColor).
				Bold(true)

	// Matched query fragment inside a candidate name
	MatchStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true).
			Underline(true)

	// Dimmed per-row metadata (species, episode count)
	MetaStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Tag chip for a provisionally selected character
	TagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(PrimaryColor).
			Padding(0, 1)

	// Tag chip with removal focus
	FocusedTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(AccentColor).
			Bold(true).
			Padding(0, 1)

	// Roster entry
	RosterStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	// Roster entry with removal focus
	FocusedRosterStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Foreground(AccentColor).
				Bold(true)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)

	// Inline error panel replacing the candidate list after a failed fetch
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor)

	// Transient success toast
	SuccessToastStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true).
				Padding(0, 2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(SecondaryColor)

	// Transient error toast
	ErrorToastStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor)

	// Section header (Selected / Roster)
	SectionStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)
)
