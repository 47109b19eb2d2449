package picker

// NoticeLevel classifies a user-visible notice
type NoticeLevel int

const (
	// NoticeSuccess is a transient confirmation (roster changes)
	NoticeSuccess NoticeLevel = iota
	// NoticeError is a transient failure notice (empty-selection commit)
	NoticeError
)

// Notice is a user-visible message emitted by a state transition.
// Transitions queue notices instead of rendering them; the UI drains
// the queue with TakeNotices and decides how to display each one.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// TakeNotices returns all queued notices and clears the queue.
func (p *Picker) TakeNotices() []Notice {
	n := p.notices
	p.notices = nil
	return n
}

func (p *Picker) pushNotice(level NoticeLevel, text string) {
	p.notices = append(p.notices, Notice{Level: level, Text: text})
}
