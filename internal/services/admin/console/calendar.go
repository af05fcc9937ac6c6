package console

import (
	"context"
	"fmt"
	"io"

	perrors "github.com/curkin/adminconsole/internal/platform/errors"
	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// Calendar providers that connect through OAuth.
const (
	ProviderGoogle    = "google"
	ProviderMicrosoft = "microsoft"
)

// CalendarStatus renders the calendar integration status.
func (c *Console) CalendarStatus(ctx context.Context) error {
	status, err := unwrap(c.client.CalendarStatus(ctx))
	if err != nil {
		return c.fail(err)
	}
	return c.emit(status, func(w io.Writer) {
		c.heading(w, "Calendar Integration")
		state := c.palette.status("disconnected")
		if status.Connected {
			state = c.palette.status("connected")
		}
		field(w, "Status", state)
		field(w, "Provider", titleCase(orDefault(status.Provider, "none")))
		field(w, "Account", orDefault(status.Email, "-"))
	})
}

// ConnectCalendar starts the OAuth flow for provider and prints the consent
// URL to open in a browser.
func (c *Console) ConnectCalendar(ctx context.Context, provider string) error {
	var (
		env api.Envelope[api.OAuthInitiation]
		err error
	)
	switch provider {
	case ProviderGoogle:
		env, err = c.client.InitiateGoogleOAuth(ctx)
	case ProviderMicrosoft:
		env, err = c.client.InitiateMicrosoftOAuth(ctx)
	default:
		return c.fail(perrors.New(perrors.CodeUsage, fmt.Sprintf("unknown calendar provider %q (want google or microsoft)", provider)))
	}
	initiation, err := unwrap(env, err)
	if err != nil {
		return c.fail(err)
	}
	if initiation.AuthURL == "" {
		return c.fail(perrors.New(perrors.CodeRequestFailed, "backend returned no authorization URL"))
	}
	return c.emit(initiation, func(w io.Writer) {
		fmt.Fprintln(w, c.printer.Sprintf("Open this URL to connect %s Calendar:", titleCase(provider)))
		fmt.Fprintln(w, "  "+initiation.AuthURL)
	})
}

// ConfigureCalendly stores Calendly credentials.
func (c *Console) ConfigureCalendly(ctx context.Context, config api.CalendlyConfig) error {
	env, err := c.client.ConfigureCalendly(ctx, config)
	return c.done(env, err, "Calendly configured successfully.")
}

// TestCalendar checks the connected calendar.
func (c *Console) TestCalendar(ctx context.Context) error {
	env, err := c.client.TestCalendarConnection(ctx)
	return c.done(env, err, "Calendar connection successful.")
}

// DisconnectCalendar removes the integration after confirmation.
func (c *Console) DisconnectCalendar(ctx context.Context) error {
	if err := c.confirm("disconnect the calendar"); err != nil {
		return c.fail(err)
	}
	env, err := c.client.DisconnectCalendar(ctx)
	if err := c.done(env, err, "Calendar disconnected."); err != nil {
		return err
	}
	return c.CalendarStatus(ctx)
}
