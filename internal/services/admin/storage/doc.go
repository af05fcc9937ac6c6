// Package storage defines persistence contracts for console-local state.
//
// The console keeps a single credential record between runs. Pages and the
// API client depend on these interfaces so tests can swap the SQLite store
// for the in-memory one.
package storage
