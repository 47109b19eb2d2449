// Package tui implements the interactive roster builder screen.
//
// The Bubble Tea model is a thin layer over the picker state machine:
// keystrokes and mouse events become picker transitions, the debounce
// timer decides when a query actually hits the directory, and fetch
// outcomes flow back in as messages tagged with the picker's sequence
// number so stale responses are dropped.
package tui
