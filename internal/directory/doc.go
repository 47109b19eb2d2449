// Package directory provides an HTTP client for the public character
// directory (the Rick and Morty API).
//
// The client performs a single GET per search against
// /character/?name=<query> with the query percent-encoded, parses the
// JSON envelope, and returns the "results" array. An absent "results"
// key and the directory's HTTP 404 "nothing found" answer both yield an
// empty slice rather than an error.
//
// # Error Handling
//
// Failures are returned as *DirectoryError with a typed category:
//
//	results, err := client.Search("rick")
//	if directory.IsNetworkError(err) {
//	    // unreachable, DNS failure, or timeout
//	}
//	if directory.IsParseError(err) {
//	    // malformed JSON body
//	}
//
// GetShortErrorMessage converts any of these into a one-line message
// suitable for inline display.
//
// # No Retries
//
// Search issues exactly one request. There is no retry loop and no
// cancellation of in-flight requests; callers that issue overlapping
// searches must discard stale responses themselves (the picker package
// does this with sequence numbers).
package directory
