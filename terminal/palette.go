package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// MinColors is the smallest palette treated as colour capable
const MinColors = 8

var (
	ErrNoColor = errors.New("terminal has no colour support")
	ErrBadPair = errors.New("invalid colour pair")
)

// Pair is a foreground/background combination registered under an index
type Pair struct {
	Fg tcell.Color
	Bg tcell.Color
}

// Style converts the pair to a tcell style
func (p Pair) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(p.Fg).Background(p.Bg)
}

// Palette maps small integer indices to styles, curses style.
// Index 0 and unregistered indices resolve to the default style.
type Palette struct {
	colors int
	styles map[int]tcell.Style
}

// Enable checks the screen's colour capability and prepares the palette
func (p *Palette) Enable(screen tcell.Screen) error {
	n := screen.Colors()
	if n < MinColors {
		p.Disable()
		return fmt.Errorf("%w: %d colours", ErrNoColor, n)
	}
	p.colors = n
	p.styles = make(map[int]tcell.Style, 2)
	return nil
}

// Disable drops all registered pairs
func (p *Palette) Disable() {
	p.colors = 0
	p.styles = nil
}

// Enabled reports whether Enable succeeded and the palette was not disabled since
func (p *Palette) Enabled() bool {
	return p.styles != nil
}

// Register binds pair to index
func (p *Palette) Register(index int, pair Pair) error {
	if !p.Enabled() {
		return ErrNoColor
	}
	if index <= 0 {
		return fmt.Errorf("%w: index %d", ErrBadPair, index)
	}
	if err := p.checkColor(pair.Fg); err != nil {
		return fmt.Errorf("%w: pair %d foreground: %v", ErrBadPair, index, err)
	}
	if err := p.checkColor(pair.Bg); err != nil {
		return fmt.Errorf("%w: pair %d background: %v", ErrBadPair, index, err)
	}
	p.styles[index] = pair.Style()
	return nil
}

// Style resolves index to a style
func (p *Palette) Style(index int) tcell.Style {
	if s, ok := p.styles[index]; ok {
		return s
	}
	return tcell.StyleDefault
}

// checkColor rejects unset colours and palette entries the terminal lacks.
// ColorDefault and ColorReset are accepted and keep the terminal's own colour.
func (p *Palette) checkColor(c tcell.Color) error {
	if c == tcell.ColorDefault || c == tcell.ColorReset || c.IsRGB() {
		return nil
	}
	if !c.Valid() {
		return fmt.Errorf("color %v not valid", c)
	}
	if idx := int(c - tcell.ColorValid); idx >= p.colors {
		return fmt.Errorf("color index %d outside %d-colour palette", idx, p.colors)
	}
	return nil
}
