package console

import (
	"context"
	"io"
)

// Backups renders the stored backups.
func (c *Console) Backups(ctx context.Context) error {
	backups, err := c.client.ListBackups(ctx)
	if err != nil {
		return c.fail(err)
	}
	if len(backups) == 0 {
		c.empty("backups")
		return nil
	}
	return c.emit(backups, func(w io.Writer) {
		c.heading(w, "System Backups")
		tw := newTable(w, "ID", "TYPE", "USERS", "ANALYSES", "CREATED BY", "TIMESTAMP")
		for _, b := range backups {
			row(tw, b.ID, titleCase(orDefault(b.BackupType, "full")), c.printer.Sprintf("%d", b.UsersCount),
				c.printer.Sprintf("%d", b.AnalysesCount), orDefault(b.CreatedBy, "-"), formatTimestamp(b.Timestamp))
		}
		tw.Flush()
	})
}

// CreateBackup starts a backup after confirmation, reports its id and
// re-renders the list.
func (c *Console) CreateBackup(ctx context.Context) error {
	if err := c.confirm("create a system backup"); err != nil {
		return c.fail(err)
	}
	result, err := c.client.CreateBackup(ctx)
	if err != nil {
		return c.fail(err)
	}
	c.status("Backup created successfully: %s", orDefault(result.BackupID, "unknown id"))
	return c.Backups(ctx)
}
