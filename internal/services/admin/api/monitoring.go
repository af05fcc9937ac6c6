package api

import (
	"context"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

// SystemHealth reports database and system indicators.
type SystemHealth struct {
	Database DatabaseHealth `json:"database"`
	System   SystemStatus   `json:"system"`
}

type DatabaseHealth struct {
	Status      string `json:"status"`
	Collections int    `json:"collections"`
	DataSize    int64  `json:"data_size"`
	Indexes     int    `json:"indexes"`
}

type SystemStatus struct {
	Status              string `json:"status"`
	ActiveUsers24h      int    `json:"active_users_24h"`
	RecentErrors24h     int    `json:"recent_errors_24h"`
	StaleProcessingJobs int    `json:"stale_processing_jobs"`
}

// CleanupResult reports what a maintenance cleanup removed.
type CleanupResult struct {
	StaleJobsCleaned  int `json:"stale_jobs_cleaned"`
	RateLimitsCleaned int `json:"rate_limits_cleaned"`
}

// SystemHealth fetches health indicators.
func (c *Client) SystemHealth(ctx context.Context) (SystemHealth, error) {
	return decode[SystemHealth](c.Get(ctx, routepath.MonitoringHealth, nil))
}

// CleanupSystem triggers stale job and rate limit cleanup.
func (c *Client) CleanupSystem(ctx context.Context) (CleanupResult, error) {
	return decode[CleanupResult](c.Post(ctx, routepath.MonitoringCleanup, nil))
}
