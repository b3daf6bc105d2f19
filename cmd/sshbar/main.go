// Command sshbar draws a one-line bar showing user@host, coloured by whether
// the session arrived over SSH. Press q to quit.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"

	"golang.org/x/term"

	"github.com/lixenwraith/sshbar/config"
	"github.com/lixenwraith/sshbar/logging"
	"github.com/lixenwraith/sshbar/statusbar"
	"github.com/lixenwraith/sshbar/terminal"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	ctx, stopSignals := signalContext()
	defer stopSignals()

	// Panic Recovery: Ensure terminal is reset even if the bar crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSSHBAR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	cfg := loadConfig(os.Stderr)

	logging.Init(cfg.LoggingConfig())
	defer logging.Shutdown()
	log := logging.Logger()
	if len(cfg.Unknown) > 0 {
		log.Warn("unknown_config_keys", "keys", cfg.Unknown)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "sshbar: stdout is not a terminal")
		return 1
	}

	opts, err := appOptions(cfg)
	if err != nil {
		// Load already validated; fall back to built-in colours regardless
		log.Warn("config_colors_ignored", "error", err)
	}
	app := statusbar.New(cfg.RefreshInterval, opts...)
	log.Info("starting", "interval", app.Interval().String())

	if err := app.Run(ctx); err != nil {
		log.Error("run_failed", "error", err)
		fmt.Fprintf(os.Stderr, "sshbar: %v\n", err)
		return 1
	}
	log.Info("stopped")
	return 0
}

// signalContext is cancelled by the first interrupt signal. Installed before
// anything else so an early Ctrl-C ends the run with status 0.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), statusbar.InterruptSignals()...)
}

// loadConfig reads the user config, reporting problems to w and falling
// back to defaults so a broken file never prevents the bar from starting
func loadConfig(w io.Writer) config.Config {
	path, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(w, "sshbar: %v (using defaults)\n", err)
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(w, "sshbar: %v (using defaults)\n", err)
	}
	return cfg
}

// appOptions converts config colours into statusbar options
func appOptions(cfg config.Config) ([]statusbar.Option, error) {
	alert, err := cfg.Colors.Alert.Pair()
	if err != nil {
		return nil, fmt.Errorf("colors.alert: %w", err)
	}
	normal, err := cfg.Colors.Normal.Pair()
	if err != nil {
		return nil, fmt.Errorf("colors.normal: %w", err)
	}
	return []statusbar.Option{statusbar.WithColors(alert, normal)}, nil
}
