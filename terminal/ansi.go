// @focus: #terminal { ansi }
package terminal

// resetSequence undoes what the screen sets up on Init, in reverse order:
// cursor hidden, autowrap disabled, alternate screen entered, colours set.
// Mouse and paste modes are never enabled, so they are left alone.
var resetSequence = []byte(
	"\x1b[0m" + // SGR reset
		"\x1b[?7h" + // autowrap on
		"\x1b[?1049l" + // leave alternate screen
		"\x1b[?25h", // show cursor
)
