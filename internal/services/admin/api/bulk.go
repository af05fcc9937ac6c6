package api

import (
	"context"
	"math"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

// Bulk operation statuses.
const (
	BulkStatusPending    = "pending"
	BulkStatusProcessing = "processing"
	BulkStatusCompleted  = "completed"
	BulkStatusFailed     = "failed"
	BulkStatusCancelled  = "cancelled"
)

// BulkOperation is a batch analysis job.
type BulkOperation struct {
	ID        string `json:"id"`
	BulkID    string `json:"bulk_id"`
	Status    string `json:"status"`
	TotalURLs int    `json:"total_urls"`
	Completed int    `json:"completed"`
	Failed    int    `json:"failed"`
	CreatedAt string `json:"created_at"`
	UserID    string `json:"user_id,omitempty"`
}

// Progress returns round((completed+failed)/total_urls*100), or 0 when the
// operation has no URLs.
func (b BulkOperation) Progress() int {
	if b.TotalURLs <= 0 {
		return 0
	}
	return int(math.Round(float64(b.Completed+b.Failed) / float64(b.TotalURLs) * 100))
}

// Cancellable reports whether the operation can still be cancelled.
func (b BulkOperation) Cancellable() bool {
	return b.Status == BulkStatusProcessing || b.Status == BulkStatusPending
}

// BulkOperations fetches a page of bulk operations.
func (c *Client) BulkOperations(ctx context.Context, skip, limit int) ([]BulkOperation, error) {
	return decode[[]BulkOperation](c.Get(ctx, routepath.BulkOperations, pageParams(skip, limit)))
}

// CancelBulkOperation cancels a bulk operation by its bulk id.
func (c *Client) CancelBulkOperation(ctx context.Context, bulkID string) (*Response, error) {
	if err := requireID("bulk id", bulkID); err != nil {
		return nil, err
	}
	return c.Post(ctx, routepath.BulkOperationCancel(bulkID), nil)
}
