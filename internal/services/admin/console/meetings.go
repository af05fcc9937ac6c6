package console

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// MeetingsView is the meeting scheduler page.
type MeetingsView struct {
	Meetings []api.Meeting         `json:"meetings"`
	Stats    api.MeetingStatistics `json:"statistics"`
	Calendar api.CalendarConfig    `json:"calendar_config"`
	Slots    []api.TimeSlot        `json:"available_slots"`
}

// LoadMeetings fetches meetings, statistics, calendar configuration and the
// next open slots concurrently.
func (c *Console) LoadMeetings(ctx context.Context) (MeetingsView, error) {
	var view MeetingsView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := unwrap(c.client.Meetings(gctx, api.Params{}.AddInt("limit", MeetingListSize)))
		view.Meetings = list.Meetings
		return err
	})
	g.Go(func() (err error) {
		view.Stats, err = unwrap(c.client.MeetingStatistics(gctx))
		return err
	})
	g.Go(func() (err error) {
		view.Calendar, err = unwrap(c.client.CalendarConfig(gctx))
		return err
	})
	g.Go(func() error {
		slots, err := unwrap(c.client.AvailableSlots(gctx, 0, 0))
		view.Slots = slots.Slots
		return err
	})
	if err := g.Wait(); err != nil {
		return MeetingsView{}, err
	}
	return view, nil
}

// Meetings renders the meeting scheduler page.
func (c *Console) Meetings(ctx context.Context) error {
	view, err := c.LoadMeetings(ctx)
	if err != nil {
		return c.fail(err)
	}
	return c.emit(view, func(w io.Writer) {
		p := c.printer
		c.heading(w, "Meeting Scheduler")
		field(w, "Total Scheduled", p.Sprintf("%d", view.Stats.TotalMeetingsScheduled))
		field(w, "This Week", p.Sprintf("%d", view.Stats.MeetingsThisWeek))
		field(w, "Conversion Rate", p.Sprintf("%.1f%%", view.Stats.ConversionRate))
		field(w, "Avg Response Time", p.Sprintf("%.1fh", view.Stats.AverageResponseTime))
		field(w, "Most Common Type", titleCase(orDefault(view.Stats.MostCommonMeetingType, "none")))
		field(w, "Calendar Provider", orDefault(view.Calendar.Provider(), "not configured"))

		c.section(w, "Meetings")
		if len(view.Meetings) == 0 {
			fmt.Fprintln(w, p.Sprintf("No %s found.", "meetings"))
		} else {
			tw := newTable(w, "ID", "TITLE", "WHEN", "STATUS", "TYPE", "ATTENDEES")
			for _, m := range view.Meetings {
				row(tw, m.ID, m.Title, formatTimeRange(m.StartTime, m.EndTime), c.palette.status(m.Status),
					titleCase(orDefault(m.MeetingType, "-")), len(m.AttendeeEmails))
			}
			tw.Flush()
		}

		c.section(w, "Available Slots")
		if len(view.Slots) == 0 {
			fmt.Fprintln(w, p.Sprintf("No %s found.", "available slots"))
			return
		}
		for _, slot := range view.Slots {
			fmt.Fprintln(w, "  "+formatTimeRange(slot.StartTime, slot.EndTime))
		}
	})
}

// UpdateMeeting updates a meeting and re-renders the page.
func (c *Console) UpdateMeeting(ctx context.Context, meetingID string, update api.MeetingUpdate) error {
	env, err := c.client.UpdateMeeting(ctx, meetingID, update)
	if err := c.done(env, err, "Updated meeting %s.", meetingID); err != nil {
		return err
	}
	return c.Meetings(ctx)
}

// CancelMeeting cancels a meeting after confirmation.
func (c *Console) CancelMeeting(ctx context.Context, meetingID string) error {
	if err := c.confirm("cancel meeting " + meetingID); err != nil {
		return c.fail(err)
	}
	env, err := c.client.CancelMeeting(ctx, meetingID)
	if err := c.done(env, err, "Cancelled meeting %s.", meetingID); err != nil {
		return err
	}
	return c.Meetings(ctx)
}

// SaveCalendarConfig stores the scheduler calendar configuration.
func (c *Console) SaveCalendarConfig(ctx context.Context, config api.CalendarConfig) error {
	env, err := c.client.SaveCalendarConfig(ctx, config)
	return c.done(env, err, "Saved calendar configuration for %s.", orDefault(config.Provider(), "provider"))
}

// TestMeetingConnection checks a calendar configuration without saving it.
func (c *Console) TestMeetingConnection(ctx context.Context, config api.CalendarConfig) error {
	env, err := c.client.TestMeetingConnection(ctx, config)
	return c.done(env, err, "Calendar connection successful.")
}
