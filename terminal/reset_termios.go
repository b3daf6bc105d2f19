//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// resetTerminalMode turns back on the line discipline flags raw mode clears.
// Goes through /dev/tty so a redirected stdin does not matter.
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	cooked(t)
	_ = unix.IoctlSetTermios(fd, ioctlSetTermios, t)
}

// cooked sets echo, canonical input, signals, CR translation and output
// post-processing. Without OPOST the crash report would stair-step.
func cooked(t *unix.Termios) {
	t.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Iflag |= unix.ICRNL | unix.IXON
	t.Oflag |= unix.OPOST
}
