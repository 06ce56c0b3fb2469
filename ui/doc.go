// Package ui provides a read-only HTTP inspector for the current task
// context snapshot: the rendered snapshot, the compaction counter, and
// how many sessions still owe a recovery injection.
//
// Usage:
//
//	http.Handle("/recovery/", http.StripPrefix("/recovery", ui.Handler(rec, nil)))
package ui
