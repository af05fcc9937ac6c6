package api

import (
	"context"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

// Backup is one stored system backup.
type Backup struct {
	ID            string `json:"id"`
	BackupType    string `json:"backup_type"`
	UsersCount    int    `json:"users_count"`
	AnalysesCount int    `json:"analyses_count"`
	CreatedBy     string `json:"created_by"`
	Timestamp     string `json:"timestamp"`
}

// BackupResult is returned after a backup is created.
type BackupResult struct {
	BackupID string `json:"backup_id"`
	Message  string `json:"message,omitempty"`
}

// CreateBackup starts a system backup.
func (c *Client) CreateBackup(ctx context.Context) (BackupResult, error) {
	return decode[BackupResult](c.Post(ctx, routepath.BackupCreate, nil))
}

// ListBackups lists stored backups.
func (c *Client) ListBackups(ctx context.Context) ([]Backup, error) {
	return decode[[]Backup](c.Get(ctx, routepath.BackupList, nil))
}
