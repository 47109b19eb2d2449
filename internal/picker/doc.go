// Package picker implements the incremental search-and-select state
// machine: query text drives a fetch, fetched candidates are navigated
// with the keyboard or mouse, picks accumulate provisionally, and an
// explicit add action commits them onto the roster.
//
// The picker performs no I/O. SetQuery hands the caller a sequence
// number when a fetch is wanted; the caller runs the fetch however it
// likes and feeds the outcome back through ApplyResults or ApplyError.
// Responses carrying a stale sequence number are discarded, so
// overlapping fetches resolve to the newest request rather than the
// last response to arrive.
//
// Uniqueness is by character ID throughout: a character can be in the
// candidate list, the selection, or the roster, but fresh candidate
// lists exclude anything already picked.
package picker
