package api

import (
	"context"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

// AuditLog is one recorded administrative action.
type AuditLog struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	Details   any    `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
	UserEmail string `json:"user_email,omitempty"`
	UserID    string `json:"user_id,omitempty"`
}

// ErrorLog is one recorded backend failure.
type ErrorLog struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	URL       string `json:"url,omitempty"`
	Timestamp string `json:"timestamp"`
	UserID    string `json:"user_id,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// AuditLogs fetches a page of audit logs.
func (c *Client) AuditLogs(ctx context.Context, skip, limit int) ([]AuditLog, error) {
	return decode[[]AuditLog](c.Get(ctx, routepath.AuditLogs, pageParams(skip, limit)))
}

// ErrorLogs fetches a page of error logs.
func (c *Client) ErrorLogs(ctx context.Context, skip, limit int) ([]ErrorLog, error) {
	return decode[[]ErrorLog](c.Get(ctx, routepath.ErrorLogs, pageParams(skip, limit)))
}

func pageParams(skip, limit int) Params {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultUserLimit
	}
	return Params{}.AddInt("skip", skip).AddInt("limit", limit)
}
