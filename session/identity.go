package session

import (
	"os"
	"os/user"
)

const (
	unknownUser = "unknown"
	unknownHost = "localhost"
)

// userVars are checked in order before falling back to the passwd database
var userVars = [...]string{"LOGNAME", "USER", "LNAME", "USERNAME"}

// Identity is the user and host shown in the bar
type Identity struct {
	User string
	Host string
}

// String renders the identity as user@host
func (id Identity) String() string {
	return id.User + "@" + id.Host
}

// LookupIdentity resolves the invoking user and the local hostname.
// Lookup failures degrade to placeholder names instead of errors.
func LookupIdentity() Identity {
	return identityFrom(LiveEnv(), user.Current, os.Hostname)
}

func identityFrom(env Env, current func() (*user.User, error), hostname func() (string, error)) Identity {
	id := Identity{User: unknownUser, Host: unknownHost}

	found := false
	for _, name := range userVars {
		if v, ok := env.Lookup(name); ok {
			id.User = v
			found = true
			break
		}
	}
	if !found {
		if u, err := current(); err == nil && u.Username != "" {
			id.User = u.Username
		}
	}

	if h, err := hostname(); err == nil && h != "" {
		id.Host = h
	}
	return id
}
