package statusbar

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sshbar/logging"
	"github.com/lixenwraith/sshbar/session"
	"github.com/lixenwraith/sshbar/terminal"
)

const (
	// DefaultInterval is the pause between polls
	DefaultInterval = 500 * time.Millisecond

	// indent is the column where the identity text starts
	indent = 5
)

// Colour pair indices; 0 is the terminal default
const (
	pairAlert  = 1
	pairNormal = 2
)

var (
	// DefaultAlert colours the bar inside an SSH session
	DefaultAlert = terminal.Pair{Fg: tcell.ColorSilver, Bg: tcell.ColorMaroon}
	// DefaultNormal colours the bar in a local session
	DefaultNormal = terminal.Pair{Fg: tcell.ColorBlack, Bg: tcell.ColorGreen}
)

var (
	loopLog   = logging.ForComponent(logging.CompLoop)
	signalLog = logging.ForComponent(logging.CompSignal)
	termLog   = logging.ForComponent(logging.CompTerm)
)

// App draws the status bar until stopped. One App serves one run.
type App struct {
	interval time.Duration
	identity session.Identity
	alert    terminal.Pair
	normal   terminal.Pair

	factory terminal.Factory
	environ func() session.Env
	sleep   func(time.Duration)
	signals []os.Signal

	running atomic.Bool
	palette terminal.Palette

	// onRender, when set, runs after every render on the loop goroutine
	onRender func(width int, remote bool)
}

// Option customises an App at construction
type Option func(*App)

// WithIdentity replaces the user@host lookup
func WithIdentity(id session.Identity) Option {
	return func(a *App) { a.identity = id }
}

// WithColors sets the alert and normal colour pairs
func WithColors(alert, normal terminal.Pair) Option {
	return func(a *App) {
		a.alert = alert
		a.normal = normal
	}
}

// WithScreenFactory replaces how the screen is created
func WithScreenFactory(f terminal.Factory) Option {
	return func(a *App) { a.factory = f }
}

// WithEnviron replaces the environment snapshot source used for detection
func WithEnviron(f func() session.Env) Option {
	return func(a *App) { a.environ = f }
}

// WithSleep replaces the pause between polls
func WithSleep(f func(time.Duration)) Option {
	return func(a *App) { a.sleep = f }
}

// WithSignals replaces the set of signals that stop the run
func WithSignals(sigs ...os.Signal) Option {
	return func(a *App) { a.signals = sigs }
}

// New creates an App polling every interval; non-positive means DefaultInterval.
// The user and host are resolved here, once.
func New(interval time.Duration, opts ...Option) *App {
	if interval <= 0 {
		interval = DefaultInterval
	}

	a := &App{
		interval: interval,
		alert:    DefaultAlert,
		normal:   DefaultNormal,
		factory:  terminal.DefaultFactory,
		environ:  session.LiveEnv,
		sleep:    time.Sleep,
		signals:  InterruptSignals(),
	}
	a.running.Store(true)

	for _, opt := range opts {
		opt(a)
	}
	if a.identity == (session.Identity{}) {
		a.identity = session.LookupIdentity()
	}
	return a
}

// Interval returns the pause between polls
func (a *App) Interval() time.Duration {
	return a.interval
}

// Stop requests the run to end. Idempotent, non-blocking, safe from any goroutine.
func (a *App) Stop() {
	a.running.Store(false)
}

// Running reports whether the run has not been stopped
func (a *App) Running() bool {
	return a.running.Load()
}

// Run takes over the terminal and polls until stopped.
// The screen is released and signal handling restored before Run returns.
// A stop requested before Run, or a context already done, is honoured
// without touching the terminal.
func (a *App) Run(ctx context.Context) error {
	if !a.running.Load() {
		loopLog.Debug("stopped_before_run")
		return nil
	}
	if err := ctx.Err(); err != nil {
		loopLog.Debug("context_done_before_run", "error", err)
		a.Stop()
		return nil
	}

	guard := installSignals(a.signals, func(sig os.Signal) {
		signalLog.Info("stop_requested", "signal", sig.String())
		a.Stop()
	})
	defer guard.restore()

	err := terminal.Scope(a.factory, func(screen tcell.Screen) error {
		a.configure(screen)
		a.loop(ctx, screen)
		return nil
	})
	if err != nil {
		return fmt.Errorf("status bar: %w", err)
	}
	return nil
}

// configure hides the cursor and sets up colour when the terminal has it
func (a *App) configure(screen tcell.Screen) {
	screen.HideCursor()
	screen.Clear()

	if err := a.palette.Enable(screen); err != nil {
		termLog.Debug("color_unavailable", "error", err)
		return
	}
	if err := a.palette.Register(pairAlert, a.alert); err != nil {
		termLog.Warn("color_pair_rejected", "pair", "alert", "error", err)
		a.palette.Disable()
		return
	}
	if err := a.palette.Register(pairNormal, a.normal); err != nil {
		termLog.Warn("color_pair_rejected", "pair", "normal", "error", err)
		a.palette.Disable()
	}
}

// loop polls until the stop flag drops, the context ends or a stop key arrives
func (a *App) loop(ctx context.Context, screen tcell.Screen) {
	var cache frameCache

	for a.running.Load() {
		if err := ctx.Err(); err != nil {
			loopLog.Debug("context_done", "error", err)
			a.Stop()
			return
		}

		switch ev := terminal.ReadEvent(screen); ev {
		case terminal.EventQuit, terminal.EventInterrupt:
			loopLog.Debug("stop_key", "event", ev.String())
			a.Stop()
			return
		case terminal.EventResize:
			screen.Sync()
			cache.invalidateSize()
		}

		remote := session.Detect(a.environ())
		width, height := screen.Size()
		key := frameKey{remote: remote, width: width, height: height}

		if cache.changed(key) {
			if err := a.render(screen, width, remote); err != nil {
				termLog.Debug("render_failed", "error", err)
			}
			cache.store(key)
		}

		a.sleep(a.interval)
	}
}

// render redraws row 0. Surface faults are returned, never raised.
func (a *App) render(screen tcell.Screen, width int, remote bool) error {
	pair := pairNormal
	if remote {
		pair = pairAlert
	}
	style := a.palette.Style(pair)

	err := a.draw(screen, width, style)
	screen.Show()
	if a.onRender != nil {
		a.onRender(width, remote)
	}
	return err
}

// draw fills the first row and writes the identity at the indent
func (a *App) draw(screen tcell.Screen, width int, style tcell.Style) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("draw at width %d: %v", width, r)
		}
	}()

	terminal.FillRow(screen, 0, width, style)
	if avail := width - indent; avail > 0 {
		terminal.PutString(screen, indent, 0, a.identity.String(), avail, style)
	}
	return nil
}
