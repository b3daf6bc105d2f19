package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// EventKind classifies an input event for the poll loop
type EventKind uint8

const (
	EventNone      EventKind = iota // Nothing pending
	EventQuit                       // q or Q without Alt, Ctrl or Meta
	EventInterrupt                  // Ctrl-C typed while the tty is raw
	EventResize                     // Terminal dimensions changed
	EventOther                      // Anything else, ignored by callers
)

// String returns the kind name for logging
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventQuit:
		return "quit"
	case EventInterrupt:
		return "interrupt"
	case EventResize:
		return "resize"
	default:
		return "other"
	}
}

// ReadEvent takes at most one pending event without blocking.
// The caller must be the only consumer of the screen's events.
func ReadEvent(screen tcell.Screen) EventKind {
	if !screen.HasPendingEvent() {
		return EventNone
	}
	return Classify(screen.PollEvent())
}

// Classify maps a tcell event to the kinds the status bar reacts to
func Classify(ev tcell.Event) EventKind {
	switch ev := ev.(type) {
	case nil:
		return EventNone
	case *tcell.EventResize:
		return EventResize
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return EventInterrupt
		case tcell.KeyRune:
			// Plain keypress only; Alt-q and friends are not a quit
			if ev.Modifiers()&^tcell.ModShift != 0 {
				break
			}
			if r := ev.Rune(); r == 'q' || r == 'Q' {
				return EventQuit
			}
		}
	}
	return EventOther
}
