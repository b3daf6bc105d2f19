//go:build windows

package statusbar

import (
	"os"
	"syscall"
)

// InterruptSignals returns the signals that end a run.
// SIGTERM only arrives for console close events on windows.
func InterruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}
