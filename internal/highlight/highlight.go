// Package highlight splits display text into matched and unmatched
// spans for a literal query. The query is never treated as a pattern,
// so regex metacharacters in user input cannot inject.
package highlight

import "strings"

// Span is a run of text that either matched the query or did not.
type Span struct {
	Text  string
	Match bool
}

// Spans tokenizes text into spans, marking every case-insensitive
// occurrence of query as matched. An empty query yields the whole text
// as a single unmatched span. Matching operates on the lowercased
// strings, so the marked runs keep the original casing of text.
func Spans(text, query string) []Span {
	if text == "" {
		return nil
	}
	if query == "" {
		return []Span{{Text: text}}
	}

	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	var spans []Span
	pos := 0

	for pos < len(text) {
		idx := strings.Index(lowerText[pos:], lowerQuery)
		if idx < 0 {
			spans = append(spans, Span{Text: text[pos:]})
			break
		}

		if idx > 0 {
			spans = append(spans, Span{Text: text[pos : pos+idx]})
		}

		start := pos + idx
		end := start + len(lowerQuery)
		spans = append(spans, Span{Text: text[start:end], Match: true})
		pos = end
	}

	return spans
}
