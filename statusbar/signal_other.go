//go:build !unix && !windows

package statusbar

import "os"

// InterruptSignals returns the signals that end a run
func InterruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
