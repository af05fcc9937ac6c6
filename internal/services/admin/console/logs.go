package console

import (
	"context"
	"io"

	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// LogFilter narrows a page of audit or error logs locally.
type LogFilter struct {
	Search string
	// Kind is the audit action or error type to keep.
	Kind string
}

// FilterAuditLogs keeps logs whose user email or details contain the search
// term and whose action matches.
func FilterAuditLogs(logs []api.AuditLog, f LogFilter) []api.AuditLog {
	out := make([]api.AuditLog, 0, len(logs))
	for _, log := range logs {
		if f.Search != "" && !containsFold(log.UserEmail, f.Search) && !containsFold(detailsText(log.Details), f.Search) {
			continue
		}
		if f.Kind != "" && log.Action != f.Kind {
			continue
		}
		out = append(out, log)
	}
	return out
}

// FilterErrorLogs keeps logs whose message or URL contain the search term
// and whose type matches.
func FilterErrorLogs(logs []api.ErrorLog, f LogFilter) []api.ErrorLog {
	out := make([]api.ErrorLog, 0, len(logs))
	for _, log := range logs {
		if f.Search != "" && !containsFold(log.Message, f.Search) && !containsFold(log.URL, f.Search) {
			continue
		}
		if f.Kind != "" && log.Type != f.Kind {
			continue
		}
		out = append(out, log)
	}
	return out
}

func pageSkip(page int) int {
	if page < 0 {
		page = 0
	}
	return page * LogPageSize
}

// AuditLogs renders one page (zero-based) of audit logs.
func (c *Console) AuditLogs(ctx context.Context, page int, filter LogFilter) error {
	logs, err := c.client.AuditLogs(ctx, pageSkip(page), LogPageSize)
	if err != nil {
		return c.fail(err)
	}
	fetched := len(logs)
	logs = FilterAuditLogs(logs, filter)
	if len(logs) == 0 {
		c.empty("audit logs")
		return nil
	}
	return c.emit(logs, func(w io.Writer) {
		c.heading(w, "Audit Logs")
		tw := newTable(w, "TIMESTAMP", "ACTION", "USER", "DETAILS")
		for _, log := range logs {
			row(tw, formatTimestamp(log.Timestamp), c.palette.badge(auditActionTone(log.Action), titleCase(log.Action)),
				orDefault(log.UserEmail, orDefault(log.UserID, "system")), truncate(orDefault(detailsText(log.Details), "-"), 80))
		}
		tw.Flush()
		c.pageFooter(w, page, fetched)
	})
}

// ErrorLogs renders one page (zero-based) of error logs.
func (c *Console) ErrorLogs(ctx context.Context, page int, filter LogFilter) error {
	logs, err := c.client.ErrorLogs(ctx, pageSkip(page), LogPageSize)
	if err != nil {
		return c.fail(err)
	}
	fetched := len(logs)
	logs = FilterErrorLogs(logs, filter)
	if len(logs) == 0 {
		c.empty("error logs")
		return nil
	}
	return c.emit(logs, func(w io.Writer) {
		c.heading(w, "Error Logs")
		tw := newTable(w, "TIMESTAMP", "TYPE", "MESSAGE", "URL", "USER")
		for _, log := range logs {
			row(tw, formatTimestamp(log.Timestamp), c.palette.badge(errorTypeTone(log.Type), titleCase(orDefault(log.Type, "unknown"))),
				truncate(log.Message, 100), orDefault(log.URL, "-"), orDefault(log.UserID, "-"))
		}
		tw.Flush()
		c.pageFooter(w, page, fetched)
	})
}

// pageFooter prints the one-based page number. fetched counts rows the
// backend returned before local filtering; a full page means there may be more.
func (c *Console) pageFooter(w io.Writer, page, fetched int) {
	line := c.printer.Sprintf("Page %d", page+1)
	if fetched >= LogPageSize {
		line += c.printer.Sprintf(" (use -page %d for more)", page+2)
	}
	io.WriteString(w, line+"\n")
}
