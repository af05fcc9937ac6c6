// Package console renders the admin pages for the terminal.
//
// Each page method fetches what it needs through the API client, prints a
// table (or JSON/YAML document) and, for mutations, re-fetches so the output
// reflects the server state. Failures are printed inline with a hint and
// returned so the command exits non-zero.
package console
