package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/castdex/castdex/internal/config"
	"github.com/castdex/castdex/internal/directory"
	"github.com/castdex/castdex/internal/logging"
	"github.com/castdex/castdex/internal/picker"
)

// toastDuration is how long a transient notice stays on screen
const toastDuration = 2 * time.Second

// Messages for async operations
type debounceMsg struct {
	seq uint64
}

type searchResultMsg struct {
	seq     uint64
	results []directory.Character
	err     error
}

type toastExpiredMsg struct {
	id int
}

// focusArea identifies which part of the screen receives keyboard input
type focusArea int

const (
	// focusQuery: the search input and candidate list
	focusQuery focusArea = iota
	// focusSelected: the provisional tag row
	focusSelected
	// focusRoster: the committed roster list
	focusRoster
)

// toast is a transient notice currently on screen
type toast struct {
	id    int
	level picker.NoticeLevel
	text  string
}

// appKeyMap defines key bindings for the main screen
type appKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Add    key.Binding
	Focus  key.Binding
	Remove key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Add, k.Focus, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Add},
		{k.Focus, k.Remove, k.Quit},
	}
}

func newAppKeyMap() appKeyMap {
	return appKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick"),
		),
		Add: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add to roster"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch section"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "remove"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Model is the Bubble Tea model for the character roster builder.
type Model struct {
	client *directory.Client
	picker *picker.Picker
	prefs  *config.Preferences

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    appKeyMap

	focus        focusArea
	selCursor    int
	rosterCursor int

	// pendingSeq/pendingQuery identify the fetch armed by the debounce
	// timer. Timer firings carrying an older seq are ignored.
	pendingSeq   uint64
	pendingQuery string

	toast   *toast
	toastID int

	width  int
	height int
}

// NewModel creates the main screen model
func NewModel(client *directory.Client, prefs *config.Preferences) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a character name..."
	ti.Prompt = "search: "
	ti.CharLimit = 64
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:  client,
		picker:  picker.New(),
		prefs:   prefs,
		input:   ti,
		spinner: sp,
		help:    help.New(),
		keys:    newAppKeyMap(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case debounceMsg:
		// Only the timer armed by the latest keystroke fires a fetch.
		if msg.seq != m.pendingSeq {
			return m, nil
		}
		return m, m.searchCmd(msg.seq, m.pendingQuery)

	case searchResultMsg:
		if msg.err != nil {
			m.picker.ApplyError(msg.seq, directory.GetShortErrorMessage(msg.err))
			return m, nil
		}
		m.picker.ApplyResults(msg.seq, msg.results)
		return m, nil

	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes keyboard input by focus area
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global bindings
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.cycleFocus()
		return m, nil

	case "ctrl+a":
		m.picker.AddSelected()
		m.selCursor = 0
		return m, m.drainNotices()
	}

	switch m.focus {
	case focusQuery:
		return m.handleQueryKey(msg)
	case focusSelected:
		return m.handleSelectedKey(msg)
	case focusRoster:
		return m.handleRosterKey(msg)
	}

	return m, nil
}

// handleQueryKey handles input while the search box has focus
func (m Model) handleQueryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "down":
		m.picker.MoveDown()
		return m, nil

	case "up":
		m.picker.MoveUp()
		return m, nil

	case "enter":
		if m.picker.CommitHighlighted() {
			m.input.SetValue("")
			m.pendingSeq = 0
			m.pendingQuery = ""
		}
		return m, nil
	}

	// Everything else edits the query text
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != m.picker.Query() {
		return m, tea.Batch(cmd, m.armFetch(m.input.Value()))
	}
	return m, cmd
}

// handleSelectedKey handles input while the tag row has focus
func (m Model) handleSelectedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.picker.Selected()

	switch msg.String() {
	case "esc":
		m.setFocus(focusQuery)
		return m, nil

	case "left":
		if m.selCursor > 0 {
			m.selCursor--
		}
		return m, nil

	case "right":
		if m.selCursor < len(sel)-1 {
			m.selCursor++
		}
		return m, nil

	case "x", "backspace", "delete":
		if len(sel) == 0 {
			return m, nil
		}
		m.picker.RemoveSelected(sel[m.selCursor].ID)
		if m.selCursor >= len(m.picker.Selected()) && m.selCursor > 0 {
			m.selCursor--
		}
		if len(m.picker.Selected()) == 0 {
			m.setFocus(focusQuery)
		}
		return m, nil
	}

	return m, nil
}

// handleRosterKey handles input while the roster list has focus
func (m Model) handleRosterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	added := m.picker.Added()

	switch msg.String() {
	case "esc":
		m.setFocus(focusQuery)
		return m, nil

	case "up":
		if m.rosterCursor > 0 {
			m.rosterCursor--
		}
		return m, nil

	case "down":
		if m.rosterCursor < len(added)-1 {
			m.rosterCursor++
		}
		return m, nil

	case "x", "backspace", "delete":
		if len(added) == 0 {
			return m, nil
		}
		m.picker.RemoveAdded(added[m.rosterCursor].ID)
		if m.rosterCursor >= len(m.picker.Added()) && m.rosterCursor > 0 {
			m.rosterCursor--
		}
		if len(m.picker.Added()) == 0 {
			m.setFocus(focusQuery)
		}
		return m, m.drainNotices()
	}

	return m, nil
}

// handleMouse maps clicks and motion onto the candidate list
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.picker.MoveUp()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.picker.MoveDown()
		return m, nil
	}

	idx := msg.Y - headerRows
	if idx < 0 || idx >= len(m.picker.Candidates()) || idx >= m.prefs.VisibleRows() {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.picker.HoverAt(idx)

	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			if m.picker.CommitAt(idx) {
				m.input.SetValue("")
				m.pendingSeq = 0
				m.pendingQuery = ""
			}
		}
	}

	return m, nil
}

// armFetch records the new query and starts the debounce timer when the
// picker wants a fetch. The fetch itself fires from debounceMsg.
func (m *Model) armFetch(query string) tea.Cmd {
	seq, want := m.picker.SetQuery(query)
	if !want {
		m.pendingSeq = 0
		m.pendingQuery = ""
		return nil
	}

	m.pendingSeq = seq
	m.pendingQuery = query

	logging.Debug("debounce armed", zap.Uint64("seq", seq), zap.String("query", query))

	return tea.Tick(m.prefs.Debounce(), func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// searchCmd runs one directory search off the UI loop
func (m Model) searchCmd(seq uint64, query string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		results, err := client.Search(query)
		return searchResultMsg{seq: seq, results: results, err: err}
	}
}

// drainNotices turns queued picker notices into a toast with an expiry timer
func (m *Model) drainNotices() tea.Cmd {
	notices := m.picker.TakeNotices()
	if len(notices) == 0 {
		return nil
	}

	// Only the most recent notice is shown; earlier ones in the same
	// batch would be unreadable anyway.
	n := notices[len(notices)-1]
	m.toastID++
	m.toast = &toast{id: m.toastID, level: n.Level, text: n.Text}

	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// cycleFocus advances focus query -> selected -> roster -> query,
// skipping empty sections
func (m *Model) cycleFocus() {
	switch m.focus {
	case focusQuery:
		if len(m.picker.Selected()) > 0 {
			m.setFocus(focusSelected)
		} else if len(m.picker.Added()) > 0 {
			m.setFocus(focusRoster)
		}
	case focusSelected:
		if len(m.picker.Added()) > 0 {
			m.setFocus(focusRoster)
		} else {
			m.setFocus(focusQuery)
		}
	case focusRoster:
		m.setFocus(focusQuery)
	}
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f

	if f == focusQuery {
		m.input.Focus()
	} else {
		m.input.Blur()
	}

	m.selCursor = clamp(m.selCursor, len(m.picker.Selected()))
	m.rosterCursor = clamp(m.rosterCursor, len(m.picker.Added()))
}

func clamp(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}
