package console

import (
	"context"
	"io"
)

// Monitoring renders system health with threshold colouring.
func (c *Console) Monitoring(ctx context.Context) error {
	health, err := c.client.SystemHealth(ctx)
	if err != nil {
		return c.fail(err)
	}
	return c.emit(health, func(w io.Writer) {
		p := c.printer
		sys := health.System
		db := health.Database
		c.heading(w, "System Monitoring")
		field(w, "Database", c.palette.status(db.Status))
		field(w, "System", c.palette.status(sys.Status))
		field(w, "Active Users (24h)", p.Sprintf("%d", sys.ActiveUsers24h))
		field(w, "Recent Errors (24h)", c.palette.badge(
			thresholdTone(sys.RecentErrors24h, errorsWarnAbove, errorsBadAbove), p.Sprintf("%d", sys.RecentErrors24h)))
		field(w, "Stale Processing Jobs", c.palette.badge(
			thresholdTone(sys.StaleProcessingJobs, staleWarnAbove, staleBadAbove), p.Sprintf("%d", sys.StaleProcessingJobs)))

		c.section(w, "Database Information")
		field(w, "Collections", p.Sprintf("%d", db.Collections))
		field(w, "Data Size", formatFileSize(db.DataSize))
		field(w, "Indexes", p.Sprintf("%d", db.Indexes))
	})
}

// Cleanup runs maintenance cleanup after confirmation, reports what was
// removed and re-renders health.
func (c *Console) Cleanup(ctx context.Context) error {
	if err := c.confirm("run system cleanup"); err != nil {
		return c.fail(err)
	}
	result, err := c.client.CleanupSystem(ctx)
	if err != nil {
		return c.fail(err)
	}
	c.status("Cleanup completed: %d stale jobs cleaned, %d rate limits cleaned.",
		result.StaleJobsCleaned, result.RateLimitsCleaned)
	return c.Monitoring(ctx)
}
