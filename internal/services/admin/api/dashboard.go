package api

import (
	"context"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

// DashboardSummary fetches the generic dashboard summary document.
func (c *Client) DashboardSummary(ctx context.Context) (map[string]any, error) {
	return decode[map[string]any](c.Get(ctx, routepath.DashboardSummary, nil))
}

// ReportStats fetches report statistics.
func (c *Client) ReportStats(ctx context.Context) (map[string]any, error) {
	return decode[map[string]any](c.Get(ctx, routepath.ReportStats, nil))
}
