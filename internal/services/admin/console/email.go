package console

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// EmailView is the email automation page.
type EmailView struct {
	Accounts []api.EmailAccount  `json:"accounts"`
	Stats    api.EmailGlobalStats `json:"global_stats"`
	Messages []api.EmailMessage  `json:"messages"`
}

// LoadEmail fetches accounts, global statistics and the latest messages.
func (c *Console) LoadEmail(ctx context.Context) (EmailView, error) {
	var view EmailView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := unwrap(c.client.EmailAccounts(gctx))
		view.Accounts = list.Accounts
		return err
	})
	g.Go(func() error {
		stats, err := unwrap(c.client.EmailStatistics(gctx))
		view.Stats = stats.GlobalStats
		return err
	})
	g.Go(func() error {
		list, err := unwrap(c.client.EmailMessages(gctx, api.Params{}.AddInt("limit", MessageListSize)))
		view.Messages = list.Messages
		return err
	})
	if err := g.Wait(); err != nil {
		return EmailView{}, err
	}
	return view, nil
}

// Email renders the email automation page.
func (c *Console) Email(ctx context.Context) error {
	view, err := c.LoadEmail(ctx)
	if err != nil {
		return c.fail(err)
	}
	now := c.now()
	return c.emit(view, func(w io.Writer) {
		p := c.printer
		c.heading(w, "Email Automation")
		field(w, "Accounts", p.Sprintf("%d (%d active)", view.Stats.TotalAccounts, view.Stats.ActiveAccounts))
		field(w, "Emails Processed", p.Sprintf("%d", view.Stats.TotalEmailsProcessed))
		field(w, "Replies Sent", p.Sprintf("%d", view.Stats.TotalRepliesSent))

		c.section(w, "Accounts")
		if len(view.Accounts) == 0 {
			io.WriteString(w, p.Sprintf("No %s found.", "email accounts")+"\n")
		} else {
			tw := newTable(w, "ID", "NAME", "EMAIL", "STATUS", "MONITORING", "AUTO-REPLY", "PROCESSED", "REPLIES")
			for _, a := range view.Accounts {
				row(tw, a.ID, a.AccountName, a.Email, c.palette.status(a.Status), onOff(a.MonitoringEnabled),
					onOff(a.AutoReplyEnabled), a.TotalEmailsProcessed, a.TotalRepliesSent)
			}
			tw.Flush()
		}

		c.section(w, "Recent Messages")
		if len(view.Messages) == 0 {
			io.WriteString(w, p.Sprintf("No %s found.", "messages")+"\n")
			return
		}
		tw := newTable(w, "ID", "FROM", "SUBJECT", "RECEIVED", "FLAGS")
		for _, m := range view.Messages {
			row(tw, m.ID, orDefault(m.FromName, m.FromEmail), truncate(m.Subject, 60),
				formatRelative(m.ReceivedAt, now), c.messageFlags(m))
		}
		tw.Flush()
	})
}

func (c *Console) messageFlags(m api.EmailMessage) string {
	var flags string
	add := func(t tone, label string) {
		if flags != "" {
			flags += " "
		}
		flags += c.palette.badge(t, label)
	}
	if m.AutoReplySent {
		add(toneGood, "replied")
	}
	if m.EscalationRequired {
		add(toneBad, "escalated")
	}
	if m.MeetingScheduled {
		add(toneInfo, "meeting")
	}
	if flags == "" {
		return "-"
	}
	return flags
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

// AddEmailAccount registers a mailbox and re-renders the page.
func (c *Console) AddEmailAccount(ctx context.Context, account api.NewEmailAccount) error {
	created, err := unwrap(c.client.AddEmailAccount(ctx, account))
	if err != nil {
		return c.fail(err)
	}
	c.status("Added email account %s.", orDefault(created.Email, account.Email))
	return c.Email(ctx)
}

// SetEmailMonitoring turns monitoring on or off for a mailbox.
func (c *Console) SetEmailMonitoring(ctx context.Context, accountID string, enabled bool) error {
	update := api.EmailAccountUpdate{MonitoringEnabled: &enabled}
	env, err := c.client.UpdateEmailAccount(ctx, accountID, update)
	if err := c.done(env, err, "Monitoring %s for account %s.", onOff(enabled), accountID); err != nil {
		return err
	}
	return c.Email(ctx)
}

// DeleteEmailAccount removes a mailbox after confirmation.
func (c *Console) DeleteEmailAccount(ctx context.Context, accountID string) error {
	if err := c.confirm("delete email account " + accountID); err != nil {
		return c.fail(err)
	}
	env, err := c.client.DeleteEmailAccount(ctx, accountID)
	if err := c.done(env, err, "Deleted email account %s.", accountID); err != nil {
		return err
	}
	return c.Email(ctx)
}

// ReplyToEmail sends a manual reply.
func (c *Console) ReplyToEmail(ctx context.Context, messageID, content string) error {
	env, err := c.client.SendManualReply(ctx, messageID, content)
	return c.done(env, err, "Reply sent for message %s.", messageID)
}

// EscalateEmail flags a message for follow-up.
func (c *Console) EscalateEmail(ctx context.Context, messageID, reason string) error {
	env, err := c.client.EscalateEmail(ctx, messageID, reason)
	return c.done(env, err, "Escalated message %s.", messageID)
}
