// Package sqlite provides the SQLite-backed console credential store.
package sqlite
