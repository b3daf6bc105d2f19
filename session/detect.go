package session

import (
	"os"
	"strings"
)

// IndicatorVars are the variables sshd exports into a remote login shell.
// The names are an external contract and are never reinterpreted.
var IndicatorVars = [...]string{
	"SSH_CONNECTION",
	"SSH_CLIENT",
	"SSH_TTY",
}

// Env is a read-only snapshot of environment variables
type Env map[string]string

// Lookup returns the value for key and whether it is non-empty
func (e Env) Lookup(key string) (string, bool) {
	v := e[key]
	return v, v != ""
}

// LiveEnv snapshots the current process environment
func LiveEnv() Env {
	vars := os.Environ()
	env := make(Env, len(vars))
	for _, kv := range vars {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return env
}

// Detect reports whether env carries any SSH indicator with a non-empty value.
// A nil env is replaced by LiveEnv. The snapshot is never modified.
func Detect(env Env) bool {
	if env == nil {
		env = LiveEnv()
	}
	for _, name := range IndicatorVars {
		if _, ok := env.Lookup(name); ok {
			return true
		}
	}
	return false
}
