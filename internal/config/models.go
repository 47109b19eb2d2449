package config

import "time"

// Preferences represents the user-tunable application settings stored
// in the YAML config file. Session state (the provisional selection and
// the roster) is deliberately not persisted.
type Preferences struct {
	Version int `yaml:"version"`

	// DirectoryBaseURL overrides the character directory endpoint.
	// Empty means the built-in public endpoint.
	DirectoryBaseURL string `yaml:"directory_base_url,omitempty"`

	// DebounceMS is how long the query input must be quiet before a
	// search fires, in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`

	// TimeoutSeconds is the HTTP request timeout for directory searches.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// MaxVisibleRows caps the candidate rows shown at once.
	MaxVisibleRows int `yaml:"max_visible_rows"`
}

// Default preference values
const (
	DefaultDebounceMS     = 300
	DefaultTimeoutSeconds = 10
	DefaultMaxVisibleRows = 10
)

// NewPreferences creates a Preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		Version:        1,
		DebounceMS:     DefaultDebounceMS,
		TimeoutSeconds: DefaultTimeoutSeconds,
		MaxVisibleRows: DefaultMaxVisibleRows,
	}
}

// Debounce returns the debounce interval as a duration, falling back to
// the default when the stored value is not positive.
func (p *Preferences) Debounce() time.Duration {
	ms := p.DebounceMS
	if ms <= 0 {
		ms = DefaultDebounceMS
	}
	return time.Duration(ms) * time.Millisecond
}

// Timeout returns the HTTP timeout as a duration, falling back to the
// default when the stored value is not positive.
func (p *Preferences) Timeout() time.Duration {
	s := p.TimeoutSeconds
	if s <= 0 {
		s = DefaultTimeoutSeconds
	}
	return time.Duration(s) * time.Second
}

// VisibleRows returns the candidate row cap, falling back to the
// default when the stored value is not positive.
func (p *Preferences) VisibleRows() int {
	if p.MaxVisibleRows <= 0 {
		return DefaultMaxVisibleRows
	}
	return p.MaxVisibleRows
}
