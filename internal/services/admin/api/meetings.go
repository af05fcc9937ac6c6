package api

import (
	"context"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

const (
	defaultSlotDuration = 30
	defaultSlotDays     = 7
)

// Meeting is a scheduled meeting.
type Meeting struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	Status         string   `json:"status"`
	MeetingType    string   `json:"meeting_type,omitempty"`
	MeetingLink    string   `json:"meeting_link,omitempty"`
	AttendeeEmails []string `json:"attendee_emails,omitempty"`
}

type MeetingList struct {
	Meetings []Meeting `json:"meetings"`
}

// MeetingStatistics summarizes scheduling activity.
type MeetingStatistics struct {
	TotalMeetingsScheduled int     `json:"total_meetings_scheduled"`
	MeetingsThisWeek       int     `json:"meetings_this_week"`
	ConversionRate         float64 `json:"conversion_rate"`
	AverageResponseTime    float64 `json:"average_response_time"`
	MostCommonMeetingType  string  `json:"most_common_meeting_type"`
}

// TimeSlot is one bookable interval.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type SlotList struct {
	Slots []TimeSlot `json:"slots"`
}

// CalendarConfig is the provider configuration document. Only the provider
// key is interpreted by the console.
type CalendarConfig map[string]any

// Provider returns the configured provider name, or "".
func (c CalendarConfig) Provider() string {
	value, _ := c["provider"].(string)
	return value
}

// MeetingUpdate is a partial PUT payload for a meeting.
type MeetingUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitnil,oneof=scheduled confirmed completed cancelled"`
	MeetingLink *string `json:"meeting_link,omitempty" validate:"omitnil,url"`
}

// Meetings lists meetings filtered by params.
func (c *Client) Meetings(ctx context.Context, params Params) (Envelope[MeetingList], error) {
	return decode[Envelope[MeetingList]](c.Get(ctx, routepath.Meetings, params))
}

// MeetingStatistics fetches scheduling statistics.
func (c *Client) MeetingStatistics(ctx context.Context) (Envelope[MeetingStatistics], error) {
	return decode[Envelope[MeetingStatistics]](c.Get(ctx, routepath.MeetingStatistics, nil))
}

// AvailableSlots lists open slots (30 minute slots, 7 days ahead by default).
func (c *Client) AvailableSlots(ctx context.Context, durationMinutes, daysAhead int) (Envelope[SlotList], error) {
	if durationMinutes <= 0 {
		durationMinutes = defaultSlotDuration
	}
	if daysAhead <= 0 {
		daysAhead = defaultSlotDays
	}
	params := Params{}.AddInt("duration_minutes", durationMinutes).AddInt("days_ahead", daysAhead)
	return decode[Envelope[SlotList]](c.Get(ctx, routepath.MeetingSlots, params))
}

// CalendarConfig fetches the meeting calendar configuration.
func (c *Client) CalendarConfig(ctx context.Context) (Envelope[CalendarConfig], error) {
	return decode[Envelope[CalendarConfig]](c.Get(ctx, routepath.MeetingCalendarConfig, nil))
}

// SaveCalendarConfig stores the meeting calendar configuration.
func (c *Client) SaveCalendarConfig(ctx context.Context, config CalendarConfig) (Envelope[map[string]any], error) {
	return decode[Envelope[map[string]any]](c.Post(ctx, routepath.MeetingCalendarConfig, config))
}

// TestMeetingConnection checks a calendar configuration without saving it.
func (c *Client) TestMeetingConnection(ctx context.Context, config CalendarConfig) (Envelope[map[string]any], error) {
	return decode[Envelope[map[string]any]](c.Post(ctx, routepath.MeetingTestConnection, config))
}

// UpdateMeeting updates a meeting.
func (c *Client) UpdateMeeting(ctx context.Context, meetingID string, update MeetingUpdate) (Envelope[map[string]any], error) {
	if err := requireID("meeting id", meetingID); err != nil {
		return Envelope[map[string]any]{}, err
	}
	return decode[Envelope[map[string]any]](c.Put(ctx, routepath.Meeting(meetingID), update))
}

// CancelMeeting cancels a meeting.
func (c *Client) CancelMeeting(ctx context.Context, meetingID string) (Envelope[map[string]any], error) {
	if err := requireID("meeting id", meetingID); err != nil {
		return Envelope[map[string]any]{}, err
	}
	return decode[Envelope[map[string]any]](c.Delete(ctx, routepath.Meeting(meetingID)))
}
