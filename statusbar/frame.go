package statusbar

// frameKey is everything a redraw depends on besides the fixed identity
type frameKey struct {
	remote        bool
	width, height int
}

// frameCache remembers the last drawn key. Both halves start unknown so the
// first poll always draws.
type frameCache struct {
	last        frameKey
	remoteKnown bool
	sizeKnown   bool
}

// changed reports whether k would look different from the last draw
func (c *frameCache) changed(k frameKey) bool {
	if !c.remoteKnown || !c.sizeKnown {
		return true
	}
	return c.last != k
}

func (c *frameCache) store(k frameKey) {
	c.last = k
	c.remoteKnown = true
	c.sizeKnown = true
}

// invalidateSize forces the next comparison to redraw
func (c *frameCache) invalidateSize() {
	c.sizeKnown = false
}
