package session

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"empty snapshot", Env{}, false},
		{"ssh connection", Env{"SSH_CONNECTION": "1.2.3.4 22 5.6.7.8 22"}, true},
		{"ssh client", Env{"SSH_CLIENT": "1.2.3.4 50000 22"}, true},
		{"ssh tty", Env{"SSH_TTY": "/dev/pts/3"}, true},
		{"empty ssh tty", Env{"SSH_TTY": ""}, false},
		{"all empty", Env{"SSH_CONNECTION": "", "SSH_CLIENT": "", "SSH_TTY": ""}, false},
		{"one of several set", Env{"SSH_CONNECTION": "", "SSH_TTY": "/dev/pts/0"}, true},
		{"unrelated vars", Env{"TERM": "xterm-256color", "SSH_AUTH_SOCK": "/tmp/agent"}, false},
		{"case sensitive names", Env{"ssh_tty": "/dev/pts/1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Detect(tt.env))
		})
	}
}

func TestDetect_PureAndNonMutating(t *testing.T) {
	t.Parallel()

	env := Env{"SSH_CLIENT": "10.0.0.1 41000 22", "HOME": "/home/op"}
	before := maps.Clone(env)

	first := Detect(env)
	second := Detect(env)

	assert.True(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, before, env)
}

func TestDetect_NilUsesLiveEnv(t *testing.T) {
	t.Setenv("SSH_CONNECTION", "")
	t.Setenv("SSH_CLIENT", "")
	t.Setenv("SSH_TTY", "")
	assert.False(t, Detect(nil))

	t.Setenv("SSH_TTY", "/dev/pts/7")
	assert.True(t, Detect(nil))
}

func TestLiveEnv_SplitsOnFirstEquals(t *testing.T) {
	t.Setenv("SSHBAR_TEST_VALUE", "a=b=c")

	env := LiveEnv()
	v, ok := env.Lookup("SSHBAR_TEST_VALUE")
	assert.True(t, ok)
	assert.Equal(t, "a=b=c", v)
}
