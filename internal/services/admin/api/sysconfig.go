package api

import (
	"context"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

const defaultRecentLogLimit = 100

// SystemConfig is the backend's runtime configuration snapshot.
type SystemConfig struct {
	Environment    string   `json:"environment"`
	Version        string   `json:"version"`
	DatabaseName   string   `json:"database_name"`
	DebugMode      bool     `json:"debug_mode"`
	GeminiModel    string   `json:"gemini_model"`
	UseVertexAI    bool     `json:"use_vertex_ai"`
	MaxFileSize    int64    `json:"max_file_size"`
	AllowedOrigins []string `json:"allowed_origins"`
}

// SystemConfig fetches the configuration snapshot.
func (c *Client) SystemConfig(ctx context.Context) (SystemConfig, error) {
	return decode[SystemConfig](c.Get(ctx, routepath.SystemConfig, nil))
}

// RecentLogs fetches recent backend log lines (100 when limit <= 0). The
// payload shape is backend-defined and returned as parsed JSON or text.
func (c *Client) RecentLogs(ctx context.Context, limit int) (any, error) {
	if limit <= 0 {
		limit = defaultRecentLogLimit
	}
	resp, err := c.Get(ctx, routepath.RecentLogs, Params{}.AddInt("limit", limit))
	if err != nil {
		return nil, err
	}
	return resp.Value(), nil
}
