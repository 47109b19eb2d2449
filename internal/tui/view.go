package tui

import (
	"fmt"
	"strings"

	"github.com/castdex/castdex/internal/highlight"
	"github.com/castdex/castdex/internal/picker"
)

// headerRows is the number of terminal rows above the first candidate
// row: title, blank, search input, blank. Mouse hit-testing subtracts
// this from the event row, so the view must keep the header exactly
// this tall.
const headerRows = 4

// View renders the whole screen
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render("character roster builder"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderResults())

	b.WriteString(m.renderSelected())
	b.WriteString(m.renderRoster())
	b.WriteString(m.renderToast())

	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// renderResults renders the candidate area: the list, a spinner while
// loading, an inline error panel after a failed fetch, or nothing when
// idle.
func (m Model) renderResults() string {
	switch m.picker.Phase() {
	case picker.PhaseLoading:
		return m.spinner.View() + SubtitleStyle.Render(" searching...") + "\n"

	case picker.PhaseFailed:
		return ErrorStyle.Render(m.picker.LastError()) + "\n"

	case picker.PhaseResults:
		cands := m.picker.Candidates()
		if len(cands) == 0 {
			return SubtitleStyle.Render("No matches.") + "\n"
		}

		var b strings.Builder
		max := m.prefs.VisibleRows()
		for i := range cands {
			if i >= max {
				b.WriteString(MetaStyle.Render(fmt.Sprintf("  ... and %d more", len(cands)-max)))
				b.WriteString("\n")
				break
			}
			b.WriteString(m.renderCandidateRow(i))
			b.WriteString("\n")
		}
		return b.String()

	default:
		return ""
	}
}

// renderCandidateRow renders one candidate as a single terminal line
func (m Model) renderCandidateRow(i int) string {
	c := m.picker.Candidates()[i]

	name := m.renderName(c.Name)
	meta := MetaStyle.Render(fmt.Sprintf(" (%s, %d eps)", c.Species, len(c.Episode)))

	if i == m.picker.Highlight() {
		return HighlightedRowStyle.Render("▸ ") + name + meta
	}
	return RowStyle.Render("") + name + meta
}

// renderName styles the candidate name with the matched query fragments
// emphasized. The query is treated as a literal, never a pattern.
func (m Model) renderName(name string) string {
	spans := highlight.Spans(name, m.picker.Query())

	var b strings.Builder
	for _, s := range spans {
		if s.Match {
			b.WriteString(MatchStyle.Render(s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// renderSelected renders the provisional picks as a row of tag chips
func (m Model) renderSelected() string {
	sel := m.picker.Selected()
	if len(sel) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(SectionStyle.Render(fmt.Sprintf("Selected (%d)", len(sel))))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render("ctrl+a to add to roster"))
	b.WriteString("\n")

	chips := make([]string, 0, len(sel))
	for i, c := range sel {
		if m.focus == focusSelected && i == m.selCursor {
			chips = append(chips, FocusedTagStyle.Render(c.Name+" ✕"))
		} else {
			chips = append(chips, TagStyle.Render(c.Name))
		}
	}
	b.WriteString(strings.Join(chips, " "))
	b.WriteString("\n")

	return b.String()
}

// renderRoster renders the committed roster with per-item removal
func (m Model) renderRoster() string {
	added := m.picker.Added()
	if len(added) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(SectionStyle.Render(fmt.Sprintf("Roster (%d)", len(added))))
	b.WriteString("\n")

	for i, c := range added {
		line := fmt.Sprintf("%s  %s", c.Name, MetaStyle.Render(fmt.Sprintf("(%s, %d eps)", c.Species, len(c.Episode))))
		if m.focus == focusRoster && i == m.rosterCursor {
			b.WriteString(FocusedRosterStyle.Render("▸ ") + line + FocusedRosterStyle.Render("  ✕"))
		} else {
			b.WriteString(RosterStyle.Render("") + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderToast renders the transient notice, if one is on screen
func (m Model) renderToast() string {
	if m.toast == nil {
		return ""
	}

	style := SuccessToastStyle
	if m.toast.level == picker.NoticeError {
		style = ErrorToastStyle
	}

	return "\n" + style.Render(m.toast.text) + "\n"
}
