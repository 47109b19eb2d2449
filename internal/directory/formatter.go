package directory

import (
	"fmt"
	"strings"
)

// FormatDetailed returns a multi-line block per character, suitable for
// the one-shot search command's default output.
func FormatDetailed(chars []Character) string {
	if len(chars) == 0 {
		return "No characters found.\n"
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Found %d character(s):\n\n", len(chars)))

	for i, c := range chars {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, c.Name))
		b.WriteString(fmt.Sprintf("   ID:       %d\n", c.ID))
		b.WriteString(fmt.Sprintf("   Status:   %s\n", c.Status))
		b.WriteString(fmt.Sprintf("   Species:  %s\n", c.Species))
		b.WriteString(fmt.Sprintf("   Episodes: %d\n", len(c.Episode)))
		b.WriteString(fmt.Sprintf("   Image:    %s\n", c.Image))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatCompact returns one line per character.
func FormatCompact(chars []Character) string {
	if len(chars) == 0 {
		return "No characters found.\n"
	}

	var b strings.Builder
	for _, c := range chars {
		b.WriteString(c.Summary())
		b.WriteString("\n")
	}
	return b.String()
}
