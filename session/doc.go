// Package session answers two questions about the process environment:
// whether the shell arrived over SSH, and who is logged in where.
//
// Detection is a pure predicate over an Env snapshot so callers can inject
// fixed environments in tests. A nil Env falls back to the live process
// environment.
package session
