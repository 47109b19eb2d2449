package picker

import (
	"fmt"

	"github.com/castdex/castdex/internal/directory"
)

// Phase represents the picker's fetch lifecycle state
type Phase int

const (
	// PhaseIdle means the query is empty and no candidates are shown
	PhaseIdle Phase = iota
	// PhaseLoading means a fetch for the current query is outstanding
	PhaseLoading
	// PhaseResults means candidates are available and the highlight is valid
	PhaseResults
	// PhaseFailed means the last fetch failed and its message is held
	PhaseFailed
)

// String returns a human-readable name for the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseResults:
		return "results"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Picker owns the search-and-select state: the query text, the fetched
// candidate list, the keyboard highlight, the provisional selection, and
// the committed roster. All methods are plain state transitions with no
// I/O; the UI layer issues fetches and feeds responses back in.
//
// Not safe for concurrent use. All access is expected to happen on the
// UI event loop.
type Picker struct {
	query      string
	phase      Phase
	candidates []directory.Character
	highlight  int
	lastError  string

	selected    []directory.Character
	selectedIDs map[int]bool

	added    []directory.Character
	addedIDs map[int]bool

	// seq is the sequence number of the most recently requested fetch.
	// Responses tagged with an older number are discarded so a slow
	// stale response can never overwrite a newer one.
	seq uint64

	notices []Notice
}

// New creates an empty picker in the Idle phase
func New() *Picker {
	return &Picker{
		selectedIDs: make(map[int]bool),
		addedIDs:    make(map[int]bool),
	}
}

// Query returns the current query text
func (p *Picker) Query() string { return p.query }

// Phase returns the current lifecycle phase
func (p *Picker) Phase() Phase { return p.phase }

// Candidates returns the current candidate list
func (p *Picker) Candidates() []directory.Character { return p.candidates }

// Highlight returns the index of the highlighted candidate
func (p *Picker) Highlight() int { return p.highlight }

// Selected returns the provisional picks in insertion order
func (p *Picker) Selected() []directory.Character { return p.selected }

// Added returns the committed roster in insertion order
func (p *Picker) Added() []directory.Character { return p.added }

// LastError returns the message of the last failed fetch, or ""
func (p *Picker) LastError() string { return p.lastError }

// SetQuery records new query text. An empty query returns the picker to
// Idle with no candidates and no fetch. A non-empty query moves to
// Loading and returns wantFetch=true along with the sequence number the
// caller must tag the fetch with.
func (p *Picker) SetQuery(q string) (seq uint64, wantFetch bool) {
	p.query = q

	if q == "" {
		p.phase = PhaseIdle
		p.candidates = nil
		p.highlight = 0
		// Any fetch still in flight is for a query the user abandoned;
		// bumping the sequence makes its response stale on arrival.
		p.seq++
		return 0, false
	}

	p.phase = PhaseLoading
	p.seq++
	return p.seq, true
}

// ApplyResults installs a fetch response. Responses whose sequence is
// older than the latest request are discarded; the return value reports
// whether the response was applied. Candidates already selected or
// already on the roster are filtered out, and the highlight resets to 0.
func (p *Picker) ApplyResults(seq uint64, chars []directory.Character) bool {
	if seq != p.seq {
		return false
	}

	filtered := make([]directory.Character, 0, len(chars))
	for _, c := range chars {
		if p.selectedIDs[c.ID] || p.addedIDs[c.ID] {
			continue
		}
		filtered = append(filtered, c)
	}

	p.candidates = filtered
	p.highlight = 0
	p.lastError = ""
	p.phase = PhaseResults
	return true
}

// ApplyError installs a fetch failure. Stale failures are discarded like
// stale results. The candidate list is cleared and the message is held
// until the next successful fetch.
func (p *Picker) ApplyError(seq uint64, msg string) bool {
	if seq != p.seq {
		return false
	}

	p.candidates = nil
	p.highlight = 0
	p.lastError = msg
	p.phase = PhaseFailed
	return true
}

// MoveDown advances the highlight, wrapping past the end of the list.
// No-op when the list is empty.
func (p *Picker) MoveDown() {
	if len(p.candidates) == 0 {
		return
	}
	p.highlight = (p.highlight + 1) % len(p.candidates)
}

// MoveUp retreats the highlight, wrapping past the start of the list.
// No-op when the list is empty.
func (p *Picker) MoveUp() {
	if len(p.candidates) == 0 {
		return
	}
	p.highlight = (p.highlight - 1 + len(p.candidates)) % len(p.candidates)
}

// HoverAt moves the highlight to the given index without any other
// state change. Out-of-range indices are ignored.
func (p *Picker) HoverAt(i int) {
	if i < 0 || i >= len(p.candidates) {
		return
	}
	p.highlight = i
}

// CommitHighlighted moves the highlighted candidate into the provisional
// selection and resets the picker to Idle (empty query, no candidates).
// Returns false when there is nothing to commit.
func (p *Picker) CommitHighlighted() bool {
	return p.CommitAt(p.highlight)
}

// CommitAt commits the candidate at the given index, the mouse-click
// equivalent of CommitHighlighted.
func (p *Picker) CommitAt(i int) bool {
	if i < 0 || i >= len(p.candidates) {
		return false
	}

	c := p.candidates[i]
	if !p.selectedIDs[c.ID] {
		p.selected = append(p.selected, c)
		p.selectedIDs[c.ID] = true
	}

	p.query = ""
	p.candidates = nil
	p.highlight = 0
	p.phase = PhaseIdle
	// A fetch for the just-committed query may still be in flight; its
	// results must not resurface after the commit cleared the list.
	p.seq++
	return true
}

// AddSelected commits every provisional pick onto the roster and clears
// the selection. An empty selection is reported as an error notice and
// leaves all state unchanged; the return value is false in that case.
func (p *Picker) AddSelected() bool {
	if len(p.selected) == 0 {
		p.pushNotice(NoticeError, "No characters selected")
		return false
	}

	moved := 0
	for _, c := range p.selected {
		if p.addedIDs[c.ID] {
			continue
		}
		p.added = append(p.added, c)
		p.addedIDs[c.ID] = true
		moved++
	}

	p.selected = nil
	p.selectedIDs = make(map[int]bool)

	p.pushNotice(NoticeSuccess, fmt.Sprintf("Added %d character(s) to the roster", moved))
	return true
}

// RemoveSelected removes a single entry from the provisional selection.
// The roster is untouched. Returns false when the id is not selected.
func (p *Picker) RemoveSelected(id int) bool {
	if !p.selectedIDs[id] {
		return false
	}

	delete(p.selectedIDs, id)
	p.selected = removeByID(p.selected, id)
	return true
}

// RemoveAdded removes a single entry from the roster and reports a
// success notice. The provisional selection is untouched.
func (p *Picker) RemoveAdded(id int) bool {
	if !p.addedIDs[id] {
		return false
	}

	var name string
	for _, c := range p.added {
		if c.ID == id {
			name = c.Name
			break
		}
	}

	delete(p.addedIDs, id)
	p.added = removeByID(p.added, id)

	p.pushNotice(NoticeSuccess, fmt.Sprintf("Removed %s from the roster", name))
	return true
}

func removeByID(chars []directory.Character, id int) []directory.Character {
	out := chars[:0]
	for _, c := range chars {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
