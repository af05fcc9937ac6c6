// Package timeouts defines shared timeout constants used by the console.
// Centralizing these values keeps page refresh cadence and API budgets
// discoverable in one place.
package timeouts

import "time"

// APIRequest caps a single REST call to the backend when no explicit
// timeout is configured.
const APIRequest = 30 * time.Second

// Command caps a whole console command, including every request it issues.
const Command = 2 * time.Minute

// PageRefresh is the auto-refresh cadence of the monitoring and bulk
// operation pages.
const PageRefresh = 30 * time.Second

// StoreBusy limits how long SQLite waits on a locked credential database.
const StoreBusy = 5 * time.Second

// Shutdown limits how long telemetry flushing may block process exit.
const Shutdown = 5 * time.Second
