package directory

import (
	"strings"
	"testing"
)

var formatterChars = []Character{
	{
		ID:      1,
		Name:    "Rick Sanchez",
		Status:  "Alive",
		Species: "Human",
		Image:   "https://rickandmortyapi.com/api/character/avatar/1.jpeg",
		Episode: []string{"e1", "e2", "e3"},
	},
	{
		ID:      8,
		Name:    "Adjudicator Rick",
		Status:  "Dead",
		Species: "Human",
		Image:   "https://rickandmortyapi.com/api/character/avatar/8.jpeg",
		Episode: []string{"e28"},
	},
}

func TestFormatDetailed(t *testing.T) {
	out := FormatDetailed(formatterChars)

	if !strings.Contains(out, "Found 2 character(s)") {
		t.Errorf("missing count header, got:\n%s", out)
	}

	if !strings.Contains(out, "1. Rick Sanchez") {
		t.Errorf("missing first entry, got:\n%s", out)
	}

	if !strings.Contains(out, "Episodes: 3") {
		t.Errorf("missing episode count, got:\n%s", out)
	}

	if !strings.Contains(out, "Status:   Dead") {
		t.Errorf("missing status line, got:\n%s", out)
	}
}

func TestFormatDetailed_Empty(t *testing.T) {
	out := FormatDetailed(nil)

	if out != "No characters found.\n" {
		t.Errorf("FormatDetailed(nil) = %q", out)
	}
}

func TestFormatCompact(t *testing.T) {
	out := FormatCompact(formatterChars)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("FormatCompact produced %d lines, want 2", len(lines))
	}

	if !strings.Contains(lines[0], "#1 Rick Sanchez") {
		t.Errorf("line 0 = %q", lines[0])
	}

	if !strings.Contains(lines[1], "1 episode(s)") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestCharacterSummary(t *testing.T) {
	c := formatterChars[0]

	want := "#1 Rick Sanchez (Alive, Human) - 3 episode(s)"
	if got := c.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	if c.EpisodeCount() != 3 {
		t.Errorf("EpisodeCount() = %d, want 3", c.EpisodeCount())
	}
}
