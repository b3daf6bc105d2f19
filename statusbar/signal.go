package statusbar

import (
	"os"
	"os/signal"
	"sync"
)

// signalGuard forwards interrupt signals to a callback for the length of one
// run and puts the previous dispositions back afterwards
type signalGuard struct {
	ch      chan os.Signal
	sigs    []os.Signal
	ignored map[os.Signal]bool
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// installSignals starts forwarding sigs to onSignal.
// Whether each signal was ignored beforehand is recorded for restore.
func installSignals(sigs []os.Signal, onSignal func(os.Signal)) *signalGuard {
	g := &signalGuard{
		ch:      make(chan os.Signal, len(sigs)+1),
		sigs:    sigs,
		ignored: make(map[os.Signal]bool, len(sigs)),
		done:    make(chan struct{}),
	}

	for _, sig := range sigs {
		g.ignored[sig] = signal.Ignored(sig)
		signal.Notify(g.ch, sig)
		signalLog.Debug("signal_installed", "signal", sig.String(), "was_ignored", g.ignored[sig])
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		for {
			select {
			case <-g.done:
				return
			case sig := <-g.ch:
				onSignal(sig)
			}
		}
	}()
	return g
}

// restore stops forwarding and re-ignores signals that were ignored before
// install. Safe to call more than once.
func (g *signalGuard) restore() {
	g.once.Do(func() {
		signal.Stop(g.ch)
		close(g.done)
		g.wg.Wait()

		for _, sig := range g.sigs {
			if g.ignored[sig] {
				signal.Ignore(sig)
			}
			signalLog.Debug("signal_restored", "signal", sig.String(), "ignored", g.ignored[sig])
		}
	})
}
