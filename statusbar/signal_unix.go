//go:build unix

package statusbar

import (
	"os"
	"syscall"
)

// InterruptSignals returns the signals that end a run
func InterruptSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM}
}
