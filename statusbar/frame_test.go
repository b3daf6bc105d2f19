package statusbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameCache(t *testing.T) {
	t.Parallel()

	var c frameCache
	k := frameKey{remote: false, width: 80, height: 24}

	assert.True(t, c.changed(k), "unknown cache always draws")
	c.store(k)
	assert.False(t, c.changed(k))

	assert.True(t, c.changed(frameKey{remote: true, width: 80, height: 24}))
	assert.True(t, c.changed(frameKey{remote: false, width: 81, height: 24}))
	assert.True(t, c.changed(frameKey{remote: false, width: 80, height: 25}))

	c.invalidateSize()
	assert.True(t, c.changed(k), "resize invalidates an identical frame")
	c.store(k)
	assert.False(t, c.changed(k))
}
