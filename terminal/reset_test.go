package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmergencyReset_WritesRestoreSequence(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	assert.Equal(t, "\x1b[0m\x1b[?7h\x1b[?1049l\x1b[?25h", buf.String())
	// No full reset: it would wipe the scrollback
	assert.NotContains(t, buf.String(), "\x1bc")
	// Mouse tracking is never enabled
	assert.NotContains(t, buf.String(), "\x1b[?1000l")
}
