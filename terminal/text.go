package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// FillRow paints width blank cells on row y
func FillRow(screen tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// PutString writes text at (x, y) using at most maxWidth columns and
// returns the columns consumed. Wide runes that would straddle the limit are
// dropped rather than split.
func PutString(screen tcell.Screen, x, y int, text string, maxWidth int, style tcell.Style) int {
	used := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > maxWidth {
			break
		}
		screen.SetContent(x+used, y, r, nil, style)
		used += w
	}
	return used
}
