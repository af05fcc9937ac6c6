package console

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// DashboardView is everything the dashboard shows. The integration
// statistics are optional and stay zero when their endpoints fail.
type DashboardView struct {
	Overview api.SystemOverview    `json:"overview"`
	Health   api.SystemHealth      `json:"health"`
	Email    api.EmailGlobalStats  `json:"email_stats"`
	Meetings api.MeetingStatistics `json:"meeting_stats"`
	Contacts api.ContactStatistics `json:"contact_stats"`
}

// LoadDashboard fetches the overview and health (both required) alongside
// the optional integration statistics.
func (c *Console) LoadDashboard(ctx context.Context) (DashboardView, error) {
	var view DashboardView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview, err := c.client.SystemOverview(gctx)
		view.Overview = overview
		return err
	})
	g.Go(func() error {
		health, err := c.client.SystemHealth(gctx)
		view.Health = health
		return err
	})
	g.Go(func() error {
		if stats, err := c.client.EmailStatistics(gctx); err == nil && stats.Success {
			view.Email = stats.Data.GlobalStats
		}
		return nil
	})
	g.Go(func() error {
		if stats, err := c.client.MeetingStatistics(gctx); err == nil && stats.Success {
			view.Meetings = stats.Data
		}
		return nil
	})
	g.Go(func() error {
		if stats, err := c.client.ContactStats(gctx); err == nil && stats.Success {
			view.Contacts = stats.Data
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return DashboardView{}, err
	}
	return view, nil
}

// Dashboard renders the overview page.
func (c *Console) Dashboard(ctx context.Context) error {
	view, err := c.LoadDashboard(ctx)
	if err != nil {
		return c.fail(err)
	}
	return c.emit(view, func(w io.Writer) {
		p := c.printer
		c.heading(w, "Dashboard")
		field(w, "Total Users", p.Sprintf("%d (%d active)", view.Overview.Users.Total, view.Overview.Users.Active))
		field(w, "Total Analyses", p.Sprintf("%d (%v%% success rate)", view.Overview.Analyses.Total, view.Overview.Analyses.SuccessRate))
		field(w, "Recent Activity", p.Sprintf("%d analyses, %d new users (last 24 hours)",
			view.Overview.Analyses.Recent24h, view.Overview.Users.Recent24h))
		field(w, "System Status", fmt.Sprintf("%s %s",
			c.palette.status(view.Health.System.Status),
			p.Sprintf("%d errors today", view.Health.System.RecentErrors24h)))

		c.section(w, "Integrations")
		field(w, "Email Accounts", p.Sprintf("%d (%d active)", view.Email.TotalAccounts, view.Email.ActiveAccounts))
		field(w, "Emails Processed", p.Sprintf("%d (%d auto-replies)", view.Email.TotalEmailsProcessed, view.Email.TotalRepliesSent))
		field(w, "Meetings Scheduled", p.Sprintf("%d (%d this week)", view.Meetings.TotalMeetingsScheduled, view.Meetings.MeetingsThisWeek))
		field(w, "Conversion Rate", p.Sprintf("%v%% email to meeting", view.Meetings.ConversionRate))

		c.section(w, "Contacts")
		field(w, "Total Contacts", p.Sprintf("%d", view.Contacts.TotalContacts))
		field(w, "New Contacts", p.Sprintf("%d", view.Contacts.NewContacts))
		field(w, "In Progress", p.Sprintf("%d", view.Contacts.InProgressContacts))
		field(w, "Resolved", p.Sprintf("%d", view.Contacts.ResolvedContacts))
	})
}
