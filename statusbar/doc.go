// Package statusbar runs the one-line SSH indicator.
//
// An App owns a tcell screen for a single run. Each poll reads at most one
// input event without blocking, re-evaluates the SSH session flag and the
// screen size, and redraws only when that pair changed since the last draw.
// Interrupt signals, the q key and context cancellation all end the run
// through the same stop flag.
package statusbar
