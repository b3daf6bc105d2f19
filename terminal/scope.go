package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Factory creates an uninitialised screen
type Factory func() (tcell.Screen, error)

// DefaultFactory opens the controlling terminal through terminfo or the console
func DefaultFactory() (tcell.Screen, error) {
	return tcell.NewScreen()
}

// Scope acquires a screen, runs fn with it and always releases it.
// Fini runs before Scope returns on normal exit, error return and panic;
// a panic keeps unwinding after the terminal is restored.
func Scope(factory Factory, fn func(tcell.Screen) error) error {
	if factory == nil {
		factory = DefaultFactory
	}

	screen, err := factory()
	if err != nil {
		return fmt.Errorf("terminal open: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	return fn(screen)
}
