package console

import (
	"context"
	"fmt"
	"io"

	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// BulkOperations renders one page (zero-based) of bulk operations.
func (c *Console) BulkOperations(ctx context.Context, page int) error {
	ops, err := c.client.BulkOperations(ctx, pageSkip(page), LogPageSize)
	if err != nil {
		return c.fail(err)
	}
	if len(ops) == 0 {
		c.empty("bulk operations")
		return nil
	}
	type bulkRow struct {
		api.BulkOperation
		Percent int `json:"progress"`
	}
	rows := make([]bulkRow, len(ops))
	for i, op := range ops {
		rows[i] = bulkRow{BulkOperation: op, Percent: op.Progress()}
	}
	now := c.now()
	return c.emit(rows, func(w io.Writer) {
		c.heading(w, "Bulk Operations")
		tw := newTable(w, "BULK ID", "STATUS", "PROGRESS", "URLS", "COMPLETED", "FAILED", "CREATED")
		for _, op := range rows {
			row(tw, op.BulkID, c.palette.status(op.Status), progressBar(op.Percent),
				op.TotalURLs, op.Completed, op.Failed, formatRelative(op.CreatedAt, now))
		}
		tw.Flush()
		c.pageFooter(w, page, len(ops))
	})
}

// CancelBulkOperation cancels after confirmation and re-renders the page.
func (c *Console) CancelBulkOperation(ctx context.Context, bulkID string) error {
	if err := c.confirm("cancel bulk operation " + bulkID); err != nil {
		return c.fail(err)
	}
	if _, err := c.client.CancelBulkOperation(ctx, bulkID); err != nil {
		return c.fail(err)
	}
	c.status("Cancelled bulk operation %s.", bulkID)
	return c.BulkOperations(ctx, 0)
}

func progressBar(percent int) string {
	const width = 10
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	bar := make([]byte, width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '.'
		}
	}
	return fmt.Sprintf("%s %3d%%", bar, percent)
}
