package directory

import "fmt"

// Character represents a single character record returned by the directory.
type Character struct {
	// ID is the unique character identifier assigned by the directory
	ID int `json:"id"`

	// Name is the character's display name
	Name string `json:"name"`

	// Status is the character's life status ("Alive", "Dead", "unknown")
	Status string `json:"status"`

	// Species is the character's species
	Species string `json:"species"`

	// Image is the URL of the character's portrait
	Image string `json:"image"`

	// Episode lists the episode URLs the character appears in, in order
	Episode []string `json:"episode"`
}

// SearchResponse is the JSON envelope the directory wraps results in.
// A response without a "results" key decodes to a nil slice.
type SearchResponse struct {
	Info    *PageInfo   `json:"info"`
	Results []Character `json:"results"`
}

// PageInfo carries the directory's pagination metadata. The client only
// ever reads the first page; the counts are kept for display.
type PageInfo struct {
	Count int `json:"count"`
	Pages int `json:"pages"`
}

// EpisodeCount returns the number of episodes the character appears in.
func (c *Character) EpisodeCount() int {
	return len(c.Episode)
}

// Summary returns a one-line summary of the character.
func (c *Character) Summary() string {
	return fmt.Sprintf("#%d %s (%s, %s) - %d episode(s)", c.ID, c.Name, c.Status, c.Species, len(c.Episode))
}
