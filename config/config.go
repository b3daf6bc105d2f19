// Package config loads the optional sshbar.toml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sshbar/logging"
	"github.com/lixenwraith/sshbar/terminal"
)

// DefaultRefreshInterval is used when the file is absent or leaves it unset
const DefaultRefreshInterval = 500 * time.Millisecond

// MinRefreshInterval is the shortest accepted poll interval. A bare TOML
// integer decodes as nanoseconds, so small values are almost always a unit slip.
const MinRefreshInterval = 10 * time.Millisecond

// ErrInvalid marks a config that parsed but holds unusable values
var ErrInvalid = errors.New("invalid config")

// Config is the decoded settings file
type Config struct {
	RefreshInterval time.Duration `toml:"refresh_interval"`
	Colors          Colors        `toml:"colors"`
	Log             Log           `toml:"log"`

	// Unknown lists keys present in the file that no field consumed
	Unknown []string `toml:"-"`
}

// Colors holds the two pairs the bar switches between
type Colors struct {
	Alert  ColorPair `toml:"alert"`
	Normal ColorPair `toml:"normal"`
}

// ColorPair names a foreground and background colour.
// Names are W3C/xterm names understood by tcell, "#rrggbb", or "default".
type ColorPair struct {
	Fg string `toml:"fg"`
	Bg string `toml:"bg"`
}

// Log mirrors logging.Config for the file
type Log struct {
	Debug  bool   `toml:"debug"`
	Dir    string `toml:"dir"`
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the built-in settings.
// Colours stay inside the 8-entry ANSI palette so every colour terminal can show them.
func Default() Config {
	return Config{
		RefreshInterval: DefaultRefreshInterval,
		Colors: Colors{
			Alert:  ColorPair{Fg: "silver", Bg: "maroon"},
			Normal: ColorPair{Fg: "black", Bg: "green"},
		},
		Log: Log{Level: "info", Format: "json"},
	}
}

// DefaultPath returns <UserConfigDir>/sshbar/config.toml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "sshbar", "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
// On any error the returned Config is Default() so callers can keep going.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("config %s parse error: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		cfg.Unknown = append(cfg.Unknown, key.String())
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks interval and colour names
func (c Config) Validate() error {
	if c.RefreshInterval < MinRefreshInterval {
		return fmt.Errorf("%w: refresh_interval must be at least %s, got %s (use a unit, e.g. \"1s\")",
			ErrInvalid, MinRefreshInterval, c.RefreshInterval)
	}
	if _, err := c.Colors.Alert.Pair(); err != nil {
		return fmt.Errorf("colors.alert: %w", err)
	}
	if _, err := c.Colors.Normal.Pair(); err != nil {
		return fmt.Errorf("colors.normal: %w", err)
	}
	return nil
}

// Pair resolves the colour names
func (p ColorPair) Pair() (terminal.Pair, error) {
	fg, err := parseColor(p.Fg)
	if err != nil {
		return terminal.Pair{}, err
	}
	bg, err := parseColor(p.Bg)
	if err != nil {
		return terminal.Pair{}, err
	}
	return terminal.Pair{Fg: fg, Bg: bg}, nil
}

// LoggingConfig converts the [log] table for logging.Init
func (c Config) LoggingConfig() logging.Config {
	return logging.Config{
		Debug:  c.Log.Debug,
		Dir:    c.Log.Dir,
		Level:  c.Log.Level,
		Format: c.Log.Format,
	}
}

func parseColor(name string) (tcell.Color, error) {
	switch name {
	case "", "default":
		return tcell.ColorDefault, nil
	case "reset":
		return tcell.ColorReset, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("%w: unknown colour %q", ErrInvalid, name)
	}
	return c, nil
}
