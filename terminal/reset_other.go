//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package terminal

// resetTerminalMode is a no-op where termios is unavailable; the console
// screen restores its own mode in Fini
func resetTerminalMode() {}
