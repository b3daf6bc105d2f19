package session

import (
	"errors"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityFrom(t *testing.T) {
	t.Parallel()

	currentOK := func() (*user.User, error) { return &user.User{Username: "pwuser"}, nil }
	currentErr := func() (*user.User, error) { return nil, errors.New("no passwd entry") }
	hostOK := func() (string, error) { return "box", nil }
	hostErr := func() (string, error) { return "", errors.New("uname failed") }

	tests := []struct {
		name     string
		env      Env
		current  func() (*user.User, error)
		hostname func() (string, error)
		want     Identity
	}{
		{"logname wins", Env{"LOGNAME": "alpha", "USER": "beta"}, currentOK, hostOK, Identity{"alpha", "box"}},
		{"user when logname empty", Env{"LOGNAME": "", "USER": "beta"}, currentOK, hostOK, Identity{"beta", "box"}},
		{"username last env", Env{"USERNAME": "delta"}, currentOK, hostOK, Identity{"delta", "box"}},
		{"passwd fallback", Env{}, currentOK, hostOK, Identity{"pwuser", "box"}},
		{"all lookups fail", Env{}, currentErr, hostErr, Identity{unknownUser, unknownHost}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, identityFrom(tt.env, tt.current, tt.hostname))
		})
	}
}

func TestIdentity_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "op@relay-01", Identity{User: "op", Host: "relay-01"}.String())
}
