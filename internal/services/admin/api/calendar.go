package api

import (
	"context"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

// OAuthInitiation carries the provider consent URL.
type OAuthInitiation struct {
	AuthURL string `json:"auth_url"`
	State   string `json:"state,omitempty"`
}

// CalendlyConfig is the Calendly credential payload.
type CalendlyConfig struct {
	APIKey  string `json:"api_key" validate:"required"`
	UserURI string `json:"user_uri" validate:"required,url"`
}

// CalendarStatus reports the connected calendar integration.
type CalendarStatus struct {
	Connected bool   `json:"connected"`
	Provider  string `json:"provider,omitempty"`
	Email     string `json:"email,omitempty"`
}

// InitiateGoogleOAuth starts the Google Calendar consent flow.
func (c *Client) InitiateGoogleOAuth(ctx context.Context) (Envelope[OAuthInitiation], error) {
	return decode[Envelope[OAuthInitiation]](c.Get(ctx, routepath.CalendarGoogleInitiate, nil))
}

// InitiateMicrosoftOAuth starts the Microsoft calendar consent flow.
func (c *Client) InitiateMicrosoftOAuth(ctx context.Context) (Envelope[OAuthInitiation], error) {
	return decode[Envelope[OAuthInitiation]](c.Get(ctx, routepath.CalendarMicrosoftInitiate, nil))
}

// ConfigureCalendly stores Calendly credentials.
func (c *Client) ConfigureCalendly(ctx context.Context, config CalendlyConfig) (Envelope[map[string]any], error) {
	return decode[Envelope[map[string]any]](c.Post(ctx, routepath.CalendarCalendlyConfigure, config))
}

// CalendarStatus fetches the integration status.
func (c *Client) CalendarStatus(ctx context.Context) (Envelope[CalendarStatus], error) {
	return decode[Envelope[CalendarStatus]](c.Get(ctx, routepath.CalendarStatus, nil))
}

// TestCalendarConnection checks the connected calendar.
func (c *Client) TestCalendarConnection(ctx context.Context) (Envelope[map[string]any], error) {
	return decode[Envelope[map[string]any]](c.Post(ctx, routepath.CalendarTestConnection, nil))
}

// DisconnectCalendar removes the calendar integration.
func (c *Client) DisconnectCalendar(ctx context.Context) (Envelope[map[string]any], error) {
	return decode[Envelope[map[string]any]](c.Delete(ctx, routepath.CalendarDisconnect))
}
