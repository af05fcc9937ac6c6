package admin

import (
	"context"
	"fmt"
	"strings"

	perrors "github.com/curkin/adminconsole/internal/platform/errors"
	"github.com/curkin/adminconsole/internal/services/admin/api"
	"github.com/curkin/adminconsole/internal/services/admin/console"
)

func registerPages() {
	register(
		command{name: "dashboard", usage: "system overview [-watch]", protected: true, watch: true, run: func(ctx context.Context, inv *invocation) error {
			return inv.watchable(ctx, inv.console.Dashboard)
		}},
		command{name: "analytics", usage: "usage trends and performance [-days N]", protected: true, run: runAnalytics},

		command{name: "users", usage: "list users [-search -role -status]", protected: true, run: runUsers},
		command{name: "users show", usage: "show one user: users show <id>", protected: true, run: runUserShow},
		command{name: "users create", usage: "create a user -name -email -password [-role]", protected: true, run: runUserCreate},
		command{name: "users update", usage: "update a user: users update [-name -role -active -verified] <id>", protected: true, run: runUserUpdate},
		command{name: "users delete", usage: "delete a user: users delete <id>", protected: true, run: idAction("user id", func(c *console.Console) func(context.Context, string) error { return c.DeleteUser })},
		command{name: "users logout", usage: "end every session of a user: users logout <id>", protected: true, run: idAction("user id", func(c *console.Console) func(context.Context, string) error { return c.ForceLogoutUser })},

		command{name: "audit", usage: "audit logs [-page N -search -action]", protected: true, run: runAudit},
		command{name: "errors", usage: "error logs [-page N -search -type]", protected: true, run: runErrors},

		command{name: "bulk", usage: "bulk operations [-page N] [-watch]", protected: true, watch: true, run: runBulk},
		command{name: "bulk cancel", usage: "cancel a bulk operation: bulk cancel <bulk id>", protected: true, run: idAction("bulk id", func(c *console.Console) func(context.Context, string) error { return c.CancelBulkOperation })},

		command{name: "backups", usage: "list system backups", protected: true, run: pageAction(func(c *console.Console) func(context.Context) error { return c.Backups })},
		command{name: "backups create", usage: "create a system backup", protected: true, run: pageAction(func(c *console.Console) func(context.Context) error { return c.CreateBackup })},

		command{name: "monitoring", usage: "system health [-watch]", protected: true, watch: true, run: func(ctx context.Context, inv *invocation) error {
			return inv.watchable(ctx, inv.console.Monitoring)
		}},
		command{name: "monitoring cleanup", usage: "clean stale jobs and rate limits", protected: true, run: pageAction(func(c *console.Console) func(context.Context) error { return c.Cleanup })},

		command{name: "content", usage: "business types and templates [-search]", protected: true, run: runContent},
		command{name: "config", usage: "system configuration [-logs -log-limit N]", protected: true, run: runConfig},

		command{name: "email", usage: "email accounts, statistics and recent messages", protected: true, run: pageAction(func(c *console.Console) func(context.Context) error { return c.Email })},
		command{name: "email add", usage: "add a monitored mailbox -name -email -imap-server -smtp-server ...", protected: true, run: runEmailAdd},
		command{name: "email monitor", usage: "toggle monitoring: email monitor -enabled=false <account id>", protected: true, run: runEmailMonitor},
		command{name: "email delete", usage: "delete a mailbox: email delete <account id>", protected: true, run: idAction("account id", func(c *console.Console) func(context.Context, string) error { return c.DeleteEmailAccount })},
		command{name: "email reply", usage: "reply by hand: email reply -message <text> <message id>", protected: true, run: runEmailReply},
		command{name: "email escalate", usage: "escalate: email escalate -reason <text> <message id>", protected: true, run: runEmailEscalate},

		command{name: "meetings", usage: "meetings, statistics, calendar config and open slots", protected: true, run: pageAction(func(c *console.Console) func(context.Context) error { return c.Meetings })},
		command{name: "meetings update", usage: "update a meeting [-title -status -start -end -link] <meeting id>", protected: true, run: runMeetingUpdate},
		command{name: "meetings cancel", usage: "cancel a meeting: meetings cancel <meeting id>", protected: true, run: idAction("meeting id", func(c *console.Console) func(context.Context, string) error { return c.CancelMeeting })},
		command{name: "meetings save-config", usage: "save calendar config -provider <name> [-set k=v,...]", protected: true, run: runCalendarConfig(false)},
		command{name: "meetings test", usage: "test a calendar config -provider <name> [-set k=v,...]", protected: true, run: runCalendarConfig(true)},

		command{name: "calendar", usage: "calendar integration status", protected: true, run: pageAction(func(c *console.Console) func(context.Context) error { return c.CalendarStatus })},
		command{name: "calendar connect", usage: "start OAuth: calendar connect google|microsoft", protected: true, run: runCalendarConnect},
		command{name: "calendar calendly", usage: "configure Calendly -api-key <key> -user-uri <uri>", protected: true, run: runCalendly},
		command{name: "calendar test", usage: "test the connected calendar", protected: true, run: pageAction(func(c *console.Console) func(context.Context) error { return c.TestCalendar })},
		command{name: "calendar disconnect", usage: "remove the calendar integration", protected: true, run: pageAction(func(c *console.Console) func(context.Context) error { return c.DisconnectCalendar })},

		command{name: "contacts", usage: "contacts [-status -purpose -search]", protected: true, run: runContacts},
		command{name: "contacts status", usage: "set status: contacts status -to <status> <contact id>", protected: true, run: runContactStatus},
		command{name: "contacts delete", usage: "delete a contact: contacts delete <contact id>", protected: true, run: idAction("contact id", func(c *console.Console) func(context.Context, string) error { return c.DeleteContact })},
	)
}

// pageAction adapts a flagless page method to a command.
func pageAction(page func(*console.Console) func(context.Context) error) func(context.Context, *invocation) error {
	return func(ctx context.Context, inv *invocation) error {
		if err := inv.parse(); err != nil {
			return err
		}
		return page(inv.console)(ctx)
	}
}

// idAction adapts a page method taking one id argument.
func idAction(name string, action func(*console.Console) func(context.Context, string) error) func(context.Context, *invocation) error {
	return func(ctx context.Context, inv *invocation) error {
		if err := inv.parse(); err != nil {
			return err
		}
		id, err := inv.arg(0, name)
		if err != nil {
			return err
		}
		return action(inv.console)(ctx, id)
	}
}

func runAnalytics(ctx context.Context, inv *invocation) error {
	days := inv.flags.Int("days", console.DefaultAnalyticsDays, "time range in days")
	if err := inv.parse(); err != nil {
		return err
	}
	return inv.console.Analytics(ctx, *days)
}

func runUsers(ctx context.Context, inv *invocation) error {
	var filter console.UserFilter
	inv.flags.StringVar(&filter.Search, "search", "", "match name or email")
	inv.flags.StringVar(&filter.Role, "role", "", "user or admin")
	inv.flags.StringVar(&filter.Status, "status", "", "active, inactive, verified or unverified")
	if err := inv.parse(); err != nil {
		return err
	}
	return inv.console.Users(ctx, filter)
}

func runUserShow(ctx context.Context, inv *invocation) error {
	if err := inv.parse(); err != nil {
		return err
	}
	id, err := inv.arg(0, "user id")
	if err != nil {
		return err
	}
	return inv.console.ShowUser(ctx, id)
}

func runUserCreate(ctx context.Context, inv *invocation) error {
	var req api.CreateUserRequest
	inv.flags.StringVar(&req.Name, "name", "", "full name")
	inv.flags.StringVar(&req.Email, "email", "", "email address")
	inv.flags.StringVar(&req.Password, "password", "", "initial password")
	inv.flags.StringVar(&req.Role, "role", "user", "user or admin")
	if err := inv.parse(); err != nil {
		return err
	}
	return inv.console.CreateUser(ctx, req)
}

func runUserUpdate(ctx context.Context, inv *invocation) error {
	fs := inv.flags
	name := fs.String("name", "", "full name")
	role := fs.String("role", "", "user or admin")
	active := fs.Bool("active", true, "account is active")
	verified := fs.Bool("verified", true, "email is verified")
	if err := inv.parse(); err != nil {
		return err
	}
	id, err := inv.arg(0, "user id")
	if err != nil {
		return err
	}
	update := api.UpdateUserRequest{
		Name:       optionalString(fs, "name", *name),
		Role:       optionalString(fs, "role", *role),
		IsActive:   optionalBool(fs, "active", *active),
		IsVerified: optionalBool(fs, "verified", *verified),
	}
	if update == (api.UpdateUserRequest{}) {
		return inv.console.Fail(perrors.New(perrors.CodeUsage, "nothing to update: pass -name, -role, -active or -verified"))
	}
	return inv.console.UpdateUser(ctx, id, update)
}

func logFlags(inv *invocation, kindName, kindUsage string) (*int, *console.LogFilter) {
	page := inv.flags.Int("page", 1, "page number, starting at 1")
	filter := &console.LogFilter{}
	inv.flags.StringVar(&filter.Search, "search", "", "free text search")
	inv.flags.StringVar(&filter.Kind, kindName, "", kindUsage)
	return page, filter
}

func runAudit(ctx context.Context, inv *invocation) error {
	page, filter := logFlags(inv, "action", "audit action to keep")
	if err := inv.parse(); err != nil {
		return err
	}
	return inv.console.AuditLogs(ctx, *page-1, *filter)
}

func runErrors(ctx context.Context, inv *invocation) error {
	page, filter := logFlags(inv, "type", "error type to keep")
	if err := inv.parse(); err != nil {
		return err
	}
	return inv.console.ErrorLogs(ctx, *page-1, *filter)
}

func runBulk(ctx context.Context, inv *invocation) error {
	page := inv.flags.Int("page", 1, "page number, starting at 1")
	return inv.watchable(ctx, func(ctx context.Context) error {
		return inv.console.BulkOperations(ctx, *page-1)
	})
}

func runContent(ctx context.Context, inv *invocation) error {
	search := inv.flags.String("search", "", "match key or name")
	if err := inv.parse(); err != nil {
		return err
	}
	return inv.console.Content(ctx, *search)
}

func runConfig(ctx context.Context, inv *invocation) error {
	logs := inv.flags.Bool("logs", false, "include recent backend logs")
	limit := inv.flags.Int("log-limit", 100, "number of log lines")
	if err := inv.parse(); err != nil {
		return err
	}
	return inv.console.SystemConfig(ctx, *logs, *limit)
}

func runEmailAdd(ctx context.Context, inv *invocation) error {
	account := api.DefaultEmailAccount()
	fs := inv.flags
	fs.StringVar(&account.AccountName, "name", "", "account display name")
	fs.StringVar(&account.Email, "email", "", "mailbox address")
	fs.StringVar(&account.Password, "password", "", "mailbox password (prompted when empty)")
	fs.StringVar(&account.IMAPServer, "imap-server", "", "IMAP host")
	fs.IntVar(&account.IMAPPort, "imap-port", account.IMAPPort, "IMAP port")
	fs.BoolVar(&account.IMAPUseSSL, "imap-ssl", account.IMAPUseSSL, "use SSL for IMAP")
	fs.StringVar(&account.SMTPServer, "smtp-server", "", "SMTP host")
	fs.IntVar(&account.SMTPPort, "smtp-port", account.SMTPPort, "SMTP port")
	fs.BoolVar(&account.SMTPUseTLS, "smtp-tls", account.SMTPUseTLS, "use TLS for SMTP")
	fs.BoolVar(&account.MonitoringEnabled, "monitoring", account.MonitoringEnabled, "monitor the inbox")
	fs.BoolVar(&account.AutoReplyEnabled, "auto-reply", account.AutoReplyEnabled, "send automatic replies")
	fs.IntVar(&account.CheckInterval, "check-interval", account.CheckInterval, "minutes between inbox checks")
	if err := inv.parse(); err != nil {
		return err
	}
	if account.Password == "" {
		value, err := promptLine(inv.in, inv.errOut, "Mailbox password: ")
		if err != nil {
			return inv.console.Fail(err)
		}
		account.Password = value
	}
	return inv.console.AddEmailAccount(ctx, account)
}

func runEmailMonitor(ctx context.Context, inv *invocation) error {
	enabled := inv.flags.Bool("enabled", true, "monitoring state")
	if err := inv.parse(); err != nil {
		return err
	}
	id, err := inv.arg(0, "account id")
	if err != nil {
		return err
	}
	return inv.console.SetEmailMonitoring(ctx, id, *enabled)
}

func runEmailReply(ctx context.Context, inv *invocation) error {
	text := inv.flags.String("message", "", "reply content")
	if err := inv.parse(); err != nil {
		return err
	}
	id, err := inv.arg(0, "message id")
	if err != nil {
		return err
	}
	return inv.console.ReplyToEmail(ctx, id, *text)
}

func runEmailEscalate(ctx context.Context, inv *invocation) error {
	reason := inv.flags.String("reason", "", "escalation reason")
	if err := inv.parse(); err != nil {
		return err
	}
	id, err := inv.arg(0, "message id")
	if err != nil {
		return err
	}
	return inv.console.EscalateEmail(ctx, id, *reason)
}

func runMeetingUpdate(ctx context.Context, inv *invocation) error {
	fs := inv.flags
	title := fs.String("title", "", "meeting title")
	description := fs.String("description", "", "meeting description")
	status := fs.String("status", "", "scheduled, confirmed, completed or cancelled")
	start := fs.String("start", "", "start time (RFC 3339)")
	end := fs.String("end", "", "end time (RFC 3339)")
	link := fs.String("link", "", "meeting link")
	if err := inv.parse(); err != nil {
		return err
	}
	id, err := inv.arg(0, "meeting id")
	if err != nil {
		return err
	}
	update := api.MeetingUpdate{
		Title:       optionalString(fs, "title", *title),
		Description: optionalString(fs, "description", *description),
		Status:      optionalString(fs, "status", *status),
		StartTime:   optionalString(fs, "start", *start),
		EndTime:     optionalString(fs, "end", *end),
		MeetingLink: optionalString(fs, "link", *link),
	}
	if update == (api.MeetingUpdate{}) {
		return inv.console.Fail(perrors.New(perrors.CodeUsage, "nothing to update"))
	}
	return inv.console.UpdateMeeting(ctx, id, update)
}

func runCalendarConfig(testOnly bool) func(context.Context, *invocation) error {
	return func(ctx context.Context, inv *invocation) error {
		provider := inv.flags.String("provider", "", "calendar provider")
		settings := inv.flags.String("set", "", "extra settings as key=value pairs, comma separated")
		if err := inv.parse(); err != nil {
			return err
		}
		cfg, err := calendarConfig(*provider, *settings)
		if err != nil {
			return inv.console.Fail(err)
		}
		if testOnly {
			return inv.console.TestMeetingConnection(ctx, cfg)
		}
		return inv.console.SaveCalendarConfig(ctx, cfg)
	}
}

func calendarConfig(provider, settings string) (api.CalendarConfig, error) {
	if strings.TrimSpace(provider) == "" {
		return nil, perrors.New(perrors.CodeUsage, "-provider is required")
	}
	cfg := api.CalendarConfig{"provider": strings.TrimSpace(provider)}
	for _, pair := range splitList(settings) {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, perrors.New(perrors.CodeUsage, fmt.Sprintf("invalid setting %q (want key=value)", pair))
		}
		cfg[key] = strings.TrimSpace(value)
	}
	return cfg, nil
}

func runCalendarConnect(ctx context.Context, inv *invocation) error {
	if err := inv.parse(); err != nil {
		return err
	}
	provider, err := inv.arg(0, "provider")
	if err != nil {
		return err
	}
	return inv.console.ConnectCalendar(ctx, strings.ToLower(provider))
}

func runCalendly(ctx context.Context, inv *invocation) error {
	var cfg api.CalendlyConfig
	inv.flags.StringVar(&cfg.APIKey, "api-key", "", "Calendly personal access token")
	inv.flags.StringVar(&cfg.UserURI, "user-uri", "", "Calendly user URI")
	if err := inv.parse(); err != nil {
		return err
	}
	return inv.console.ConfigureCalendly(ctx, cfg)
}

func runContacts(ctx context.Context, inv *invocation) error {
	var filter api.ContactFilter
	inv.flags.StringVar(&filter.Status, "status", "", "contact status")
	inv.flags.StringVar(&filter.Purpose, "purpose", "", "contact purpose")
	inv.flags.StringVar(&filter.Search, "search", "", "free text search")
	if err := inv.parse(); err != nil {
		return err
	}
	return inv.console.Contacts(ctx, filter)
}

func runContactStatus(ctx context.Context, inv *invocation) error {
	status := inv.flags.String("to", "", "new status")
	if err := inv.parse(); err != nil {
		return err
	}
	id, err := inv.arg(0, "contact id")
	if err != nil {
		return err
	}
	if *status == "" {
		return inv.console.Fail(perrors.New(perrors.CodeUsage, "-to is required"))
	}
	return inv.console.SetContactStatus(ctx, id, *status)
}
