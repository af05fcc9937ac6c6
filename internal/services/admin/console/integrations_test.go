package console

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	perrors "github.com/curkin/adminconsole/internal/platform/errors"
	"github.com/curkin/adminconsole/internal/services/admin/api"
)

func emailBackend(b *backend) {
	b.reply(http.MethodGet, "/email-accounts", ok(api.EmailAccountList{Accounts: []api.EmailAccount{
		{ID: "acc1", AccountName: "Sales", Email: "sales@example.com", Status: "active", MonitoringEnabled: true},
	}}))
	b.reply(http.MethodGet, "/email-statistics", ok(api.EmailStatistics{GlobalStats: api.EmailGlobalStats{TotalAccounts: 1, ActiveAccounts: 1}}))
	b.reply(http.MethodGet, "/email-messages", ok(api.EmailMessageList{Messages: []api.EmailMessage{
		{ID: "m1", FromEmail: "lead@example.com", Subject: "Pricing", EscalationRequired: true},
	}}))
}

func TestEmailPage(t *testing.T) {
	b := newBackend(t)
	emailBackend(b)
	h := newHarness(t, b)

	if err := h.console.Email(context.Background()); err != nil {
		t.Fatalf("email: %v", err)
	}
	if got := b.lastHit(t, http.MethodGet, "/email-messages").Query; got != "limit=50" {
		t.Fatalf("expected limit=50, got %q", got)
	}
	out := h.out.String()
	for _, want := range []string{"1 (1 active)", "sales@example.com", "[escalated]", "Pricing"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestEmailPageReportsUnsuccessfulEnvelope(t *testing.T) {
	b := newBackend(t)
	emailBackend(b)
	b.reply(http.MethodGet, "/email-statistics", map[string]any{"success": false, "message": "stats offline"})
	h := newHarness(t, b)

	err := h.console.Email(context.Background())
	if err == nil || err.Error() != "stats offline" {
		t.Fatalf("expected envelope message, got %v", err)
	}
}

func TestSetEmailMonitoringSendsUpdate(t *testing.T) {
	b := newBackend(t)
	emailBackend(b)
	b.reply(http.MethodPut, "/email-accounts/{id}", ok(map[string]any{}))
	h := newHarness(t, b)

	if err := h.console.SetEmailMonitoring(context.Background(), "acc1", false); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := b.lastHit(t, http.MethodPut, "/email-accounts/acc1").Body; got != `{"monitoring_enabled":false}` {
		t.Fatalf("unexpected body %q", got)
	}
	if !strings.Contains(h.out.String(), "Monitoring off for account acc1.") {
		t.Fatalf("expected status line, got %q", h.out.String())
	}
}

func TestReplyPrefersBackendMessage(t *testing.T) {
	b := newBackend(t)
	b.reply(http.MethodPost, "/email-messages/{id}/reply", map[string]any{"success": true, "message": "Reply queued"})
	h := newHarness(t, b)

	if err := h.console.ReplyToEmail(context.Background(), "m1", "Thanks!"); err != nil {
		t.Fatalf("reply: %v", err)
	}
	if strings.TrimSpace(h.out.String()) != "Reply queued" {
		t.Fatalf("expected backend message, got %q", h.out.String())
	}
	var body api.ManualReplyRequest
	if err := json.Unmarshal([]byte(b.lastHit(t, http.MethodPost, "/email-messages/m1/reply").Body), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.ReplyContent != "Thanks!" {
		t.Fatalf("unexpected reply body %+v", body)
	}
}

func TestMeetingsPage(t *testing.T) {
	b := newBackend(t)
	b.reply(http.MethodGet, "/meetings", ok(api.MeetingList{Meetings: []api.Meeting{{
		ID: "mt1", Title: "Intro call", Status: "scheduled",
		StartTime: "2026-03-02T10:00:00Z", EndTime: "2026-03-02T10:30:00Z",
	}}}))
	b.reply(http.MethodGet, "/meeting/statistics", ok(api.MeetingStatistics{TotalMeetingsScheduled: 3, ConversionRate: 12.5}))
	b.reply(http.MethodGet, "/meeting/calendar-config", ok(map[string]any{"provider": "google"}))
	b.reply(http.MethodGet, "/meeting/available-slots", ok(api.SlotList{}))
	h := newHarness(t, b)

	if err := h.console.Meetings(context.Background()); err != nil {
		t.Fatalf("meetings: %v", err)
	}
	if got := b.lastHit(t, http.MethodGet, "/meeting/available-slots").Query; got != "duration_minutes=30&days_ahead=7" {
		t.Fatalf("unexpected slot query %q", got)
	}
	if got := b.lastHit(t, http.MethodGet, "/meetings").Query; got != "limit=50" {
		t.Fatalf("unexpected meetings query %q", got)
	}
	out := h.out.String()
	for _, want := range []string{"Intro call", "[scheduled]", "12.5%", "google", "No available slots found."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestCancelMeetingRequiresConfirmation(t *testing.T) {
	b := newBackend(t)
	b.reply(http.MethodDelete, "/meetings/{id}", ok(nil))
	h := newHarness(t, b, withInput("no\n"))

	if err := h.console.CancelMeeting(context.Background(), "mt1"); perrors.CodeOf(err) != perrors.CodeConfirmationDeclined {
		t.Fatalf("expected declined, got %v", err)
	}
	if b.called(http.MethodDelete, "/meetings/mt1") != 0 {
		t.Fatal("expected no cancel request")
	}
	if !strings.Contains(h.errOut.String(), "Are you sure you want to cancel meeting mt1? [y/N]") {
		t.Fatalf("expected prompt, got %q", h.errOut.String())
	}
}

func TestConnectCalendarPrintsAuthURL(t *testing.T) {
	b := newBackend(t)
	b.reply(http.MethodGet, "/calendar/oauth2/microsoft/initiate", ok(api.OAuthInitiation{AuthURL: "https://login.example/consent"}))
	h := newHarness(t, b)

	if err := h.console.ConnectCalendar(context.Background(), ProviderMicrosoft); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if !strings.Contains(h.out.String(), "https://login.example/consent") {
		t.Fatalf("expected auth url, got %q", h.out.String())
	}
}

func TestConnectCalendarRejectsUnknownProvider(t *testing.T) {
	b := newBackend(t)
	h := newHarness(t, b)

	err := h.console.ConnectCalendar(context.Background(), "yahoo")
	if perrors.CodeOf(err) != perrors.CodeUsage {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestCalendarStatusAndDisconnect(t *testing.T) {
	b := newBackend(t)
	b.reply(http.MethodGet, "/calendar/status", ok(api.CalendarStatus{Connected: true, Provider: "google", Email: "ops@example.com"}))
	b.reply(http.MethodDelete, "/calendar/disconnect", ok(nil))
	h := newHarness(t, b, withYes())

	if err := h.console.DisconnectCalendar(context.Background()); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	out := h.out.String()
	for _, want := range []string{"Calendar disconnected.", "[connected]", "ops@example.com"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestConfigureCalendlyValidates(t *testing.T) {
	b := newBackend(t)
	h := newHarness(t, b)

	err := h.console.ConfigureCalendly(context.Background(), api.CalendlyConfig{APIKey: "k", UserURI: "not a url"})
	if perrors.CodeOf(err) != perrors.CodeValidationFailed {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestContactsFiltersAndStatus(t *testing.T) {
	b := newBackend(t)
	b.reply(http.MethodGet, "/contacts", ok([]api.Contact{{ID: "c1", Name: "Lee", Email: "lee@example.com", Status: "new", Purpose: "sales_inquiry"}}))
	b.reply(http.MethodGet, "/contacts/stats", ok(api.ContactStatistics{TotalContacts: 1, NewContacts: 1}))
	b.reply(http.MethodPatch, "/contacts/{id}", ok(nil))
	h := newHarness(t, b)

	if err := h.console.Contacts(context.Background(), api.ContactFilter{Status: "new", Search: "lee"}); err != nil {
		t.Fatalf("contacts: %v", err)
	}
	if got := b.lastHit(t, http.MethodGet, "/contacts").Query; got != "status=new&search=lee" {
		t.Fatalf("unexpected contact query %q", got)
	}
	if !strings.Contains(h.out.String(), "Sales Inquiry") {
		t.Fatalf("expected purpose label, got:\n%s", h.out.String())
	}

	if err := h.console.SetContactStatus(context.Background(), "c1", api.ContactStatusResolved); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if got := b.lastHit(t, http.MethodPatch, "/contacts/c1").Body; got != `{"status":"resolved"}` {
		t.Fatalf("unexpected patch body %q", got)
	}
}

func TestDeleteContactWithYes(t *testing.T) {
	b := newBackend(t)
	b.reply(http.MethodGet, "/contacts", ok([]api.Contact{}))
	b.reply(http.MethodGet, "/contacts/stats", ok(api.ContactStatistics{}))
	b.reply(http.MethodDelete, "/contacts/{id}", ok(nil))
	h := newHarness(t, b, withYes())

	if err := h.console.DeleteContact(context.Background(), "c9"); err != nil {
		t.Fatalf("delete contact: %v", err)
	}
	if b.called(http.MethodDelete, "/contacts/c9") != 1 {
		t.Fatal("expected delete request")
	}
	if !strings.Contains(h.out.String(), "No contacts found.") {
		t.Fatalf("expected empty contact list, got:\n%s", h.out.String())
	}
}
