// Package routepath holds the backend API resource paths the console calls.
//
// Paths are relative to the configured API base URL.
package routepath

import (
	"net/url"
	"strings"
)

const (
	AuthLogin = "/auth/login"
	AuthMe    = "/auth/me"
	AuthUsers = "/auth/users"
)

const (
	AnalyticsOverview    = "/admin/analytics/overview"
	AnalyticsUsageTrends = "/admin/analytics/usage-trends"
	AnalyticsPerformance = "/admin/analytics/performance"
)

const (
	Users = "/admin/users"
)

const (
	MonitoringHealth  = "/admin/monitoring/health"
	MonitoringCleanup = "/admin/monitoring/cleanup"
)

const (
	ContentBusinessTypes = "/admin/content/business-types"
	ContentTemplates     = "/admin/content/templates"
)

const (
	SystemConfig = "/admin/config"
	RecentLogs   = "/admin/logs/recent"
	ErrorLogs    = "/admin/logs/errors"
	AuditLogs    = "/admin/audit/logs"
)

const (
	DashboardSummary = "/dashboard/summary"
	ReportStats      = "/reports/stats"
)

const (
	BulkOperations = "/admin/bulk/operations"
	BackupCreate   = "/admin/backup/create"
	BackupList     = "/admin/backup/list"
)

const (
	EmailAccounts   = "/email-accounts"
	EmailStatistics = "/email-statistics"
	EmailMessages   = "/email-messages"
)

const (
	Meetings              = "/meetings"
	MeetingStatistics     = "/meeting/statistics"
	MeetingSlots          = "/meeting/available-slots"
	MeetingCalendarConfig = "/meeting/calendar-config"
	MeetingTestConnection = "/meeting/test-connection"
)

const (
	CalendarGoogleInitiate    = "/calendar/oauth2/google/initiate"
	CalendarMicrosoftInitiate = "/calendar/oauth2/microsoft/initiate"
	CalendarCalendlyConfigure = "/calendar/calendly/configure"
	CalendarStatus            = "/calendar/status"
	CalendarTestConnection    = "/calendar/test-connection"
	CalendarDisconnect        = "/calendar/disconnect"
)

const (
	Contacts     = "/contacts"
	ContactStats = "/contacts/stats"
)

func User(userID string) string {
	return Users + "/" + escapeSegment(userID)
}

func UserLogout(userID string) string {
	return AuthUsers + "/" + escapeSegment(userID) + "/logout"
}

func BulkOperationCancel(operationID string) string {
	return BulkOperations + "/" + escapeSegment(operationID) + "/cancel"
}

func EmailAccount(accountID string) string {
	return EmailAccounts + "/" + escapeSegment(accountID)
}

func EmailMessageReply(messageID string) string {
	return EmailMessages + "/" + escapeSegment(messageID) + "/reply"
}

func EmailMessageEscalate(messageID string) string {
	return EmailMessages + "/" + escapeSegment(messageID) + "/escalate"
}

func Meeting(meetingID string) string {
	return Meetings + "/" + escapeSegment(meetingID)
}

func Contact(contactID string) string {
	return Contacts + "/" + escapeSegment(contactID)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
