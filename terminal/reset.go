package terminal

import (
	"io"
	"os"
)

// EmergencyReset puts the terminal back after a crash that bypassed Fini.
// Errors are ignored; there is nothing left to report them to.
func EmergencyReset(w io.Writer) {
	_, _ = w.Write(resetSequence)
	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
	}
	resetTerminalMode()
}
