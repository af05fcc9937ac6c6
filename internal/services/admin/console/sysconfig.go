package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// ConfigView is the backend configuration with its recent log lines.
type ConfigView struct {
	Config api.SystemConfig `json:"config"`
	Logs   any              `json:"logs,omitempty"`
}

// SystemConfig renders the configuration snapshot. Recent logs are fetched
// when withLogs is set.
func (c *Console) SystemConfig(ctx context.Context, withLogs bool, logLimit int) error {
	cfg, err := c.client.SystemConfig(ctx)
	if err != nil {
		return c.fail(err)
	}
	view := ConfigView{Config: cfg}
	if withLogs {
		logs, err := c.client.RecentLogs(ctx, logLimit)
		if err != nil {
			return c.fail(err)
		}
		view.Logs = logs
	}

	return c.emit(view, func(w io.Writer) {
		c.heading(w, "System Configuration")
		field(w, "Environment", orDefault(cfg.Environment, notAvailable))
		field(w, "Version", orDefault(cfg.Version, notAvailable))
		field(w, "Database", orDefault(cfg.DatabaseName, notAvailable))
		field(w, "Debug Mode", yesNo(cfg.DebugMode))
		field(w, "Gemini Model", orDefault(cfg.GeminiModel, notAvailable))
		field(w, "Vertex AI", yesNo(cfg.UseVertexAI))
		field(w, "Max File Size", c.maxFileSizeMB(cfg.MaxFileSize))
		field(w, "Allowed Origins", orDefault(strings.Join(cfg.AllowedOrigins, ", "), "none"))

		if !withLogs {
			return
		}
		c.section(w, "Recent Logs")
		lines := logLines(view.Logs)
		if len(lines) == 0 {
			fmt.Fprintln(w, c.printer.Sprintf("No %s found.", "log entries"))
			return
		}
		for _, line := range lines {
			fmt.Fprintln(w, "  "+line)
		}
	})
}

func (c *Console) maxFileSizeMB(bytes int64) string {
	if bytes <= 0 {
		return notAvailable
	}
	return c.printer.Sprintf("%d MB", bytes/(1024*1024))
}

// logLines flattens the recent logs payload, which is either a list, an
// object holding a "logs" list, or plain text.
func logLines(logs any) []string {
	switch v := logs.(type) {
	case nil:
		return nil
	case string:
		var out []string
		for _, line := range strings.Split(v, "\n") {
			if strings.TrimSpace(line) != "" {
				out = append(out, line)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, logLine(item))
		}
		return out
	case map[string]any:
		if inner, ok := v["logs"]; ok {
			return logLines(inner)
		}
		return []string{detailsText(v)}
	default:
		return []string{detailsText(v)}
	}
}

func logLine(item any) string {
	entry, ok := item.(map[string]any)
	if !ok {
		return detailsText(item)
	}
	ts, _ := entry["timestamp"].(string)
	level, _ := entry["level"].(string)
	msg, _ := entry["message"].(string)
	if msg == "" {
		return detailsText(entry)
	}
	parts := make([]string, 0, 3)
	if ts != "" {
		parts = append(parts, formatTimestamp(ts))
	}
	if level != "" {
		parts = append(parts, strings.ToUpper(level))
	}
	return strings.Join(append(parts, msg), " ")
}
