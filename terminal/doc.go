// @focus: #sys { term }
// Package terminal wraps a tcell screen for a single fixed-row widget.
//
// Features:
//   - Scoped screen acquisition with guaranteed Fini on every exit path
//   - Non-blocking event reads classified for a poll loop
//   - Numbered colour pairs with a capability check and default fallback
//   - Display-width aware text writes
//   - Emergency reset for panic recovery outside the scope
package terminal
