package api

import (
	"context"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

// EmailAccount is a monitored mailbox.
type EmailAccount struct {
	ID                   string `json:"id"`
	AccountName          string `json:"account_name"`
	Email                string `json:"email"`
	Status               string `json:"status"`
	MonitoringEnabled    bool   `json:"monitoring_enabled"`
	AutoReplyEnabled     bool   `json:"auto_reply_enabled"`
	TotalEmailsProcessed int    `json:"total_emails_processed"`
	TotalRepliesSent     int    `json:"total_replies_sent"`
	IMAPServer           string `json:"imap_server,omitempty"`
	IMAPPort             int    `json:"imap_port,omitempty"`
	SMTPServer           string `json:"smtp_server,omitempty"`
	SMTPPort             int    `json:"smtp_port,omitempty"`
	CheckInterval        int    `json:"check_interval,omitempty"`
}

// NewEmailAccount is the payload for adding a mailbox.
type NewEmailAccount struct {
	AccountName       string `json:"account_name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password,omitempty"`
	IMAPServer        string `json:"imap_server" validate:"required,hostname|ip"`
	IMAPPort          int    `json:"imap_port" validate:"gte=1,lte=65535"`
	IMAPUseSSL        bool   `json:"imap_use_ssl"`
	SMTPServer        string `json:"smtp_server" validate:"required,hostname|ip"`
	SMTPPort          int    `json:"smtp_port" validate:"gte=1,lte=65535"`
	SMTPUseTLS        bool   `json:"smtp_use_tls"`
	MonitoringEnabled bool   `json:"monitoring_enabled"`
	AutoReplyEnabled  bool   `json:"auto_reply_enabled"`
	CheckInterval     int    `json:"check_interval" validate:"gte=1"`
}

// DefaultEmailAccount returns the add-account form defaults.
func DefaultEmailAccount() NewEmailAccount {
	return NewEmailAccount{
		IMAPPort:          993,
		IMAPUseSSL:        true,
		SMTPPort:          587,
		SMTPUseTLS:        true,
		MonitoringEnabled: true,
		AutoReplyEnabled:  true,
		CheckInterval:     30,
	}
}

// EmailAccountUpdate is a partial PUT payload for a mailbox.
type EmailAccountUpdate struct {
	MonitoringEnabled *bool `json:"monitoring_enabled,omitempty"`
	AutoReplyEnabled  *bool `json:"auto_reply_enabled,omitempty"`
	CheckInterval     *int  `json:"check_interval,omitempty" validate:"omitnil,gte=1"`
}

type EmailAccountList struct {
	Accounts []EmailAccount `json:"accounts"`
}

type EmailStatistics struct {
	GlobalStats EmailGlobalStats `json:"global_stats"`
}

type EmailGlobalStats struct {
	TotalAccounts        int `json:"total_accounts"`
	ActiveAccounts       int `json:"active_accounts"`
	TotalEmailsProcessed int `json:"total_emails_processed"`
	TotalRepliesSent     int `json:"total_replies_sent"`
}

// EmailMessage is one processed inbound message.
type EmailMessage struct {
	ID                 string `json:"id"`
	FromEmail          string `json:"from_email"`
	FromName           string `json:"from_name,omitempty"`
	Subject            string `json:"subject"`
	ReceivedAt         string `json:"received_at"`
	AutoReplySent      bool   `json:"auto_reply_sent"`
	EscalationRequired bool   `json:"escalation_required"`
	MeetingScheduled   bool   `json:"meeting_scheduled"`
}

type EmailMessageList struct {
	Messages []EmailMessage `json:"messages"`
}

// ManualReplyRequest is the body of a manual reply.
type ManualReplyRequest struct {
	ReplyContent string `json:"reply_content" validate:"required"`
}

// EscalationRequest is the body of an escalation.
type EscalationRequest struct {
	EscalationReason string `json:"escalation_reason" validate:"required"`
}

// EmailAccounts lists monitored mailboxes.
func (c *Client) EmailAccounts(ctx context.Context) (Envelope[EmailAccountList], error) {
	return decode[Envelope[EmailAccountList]](c.Get(ctx, routepath.EmailAccounts, nil))
}

// AddEmailAccount registers a mailbox.
func (c *Client) AddEmailAccount(ctx context.Context, account NewEmailAccount) (Envelope[EmailAccount], error) {
	return decode[Envelope[EmailAccount]](c.Post(ctx, routepath.EmailAccounts, account))
}

// UpdateEmailAccount updates a mailbox.
func (c *Client) UpdateEmailAccount(ctx context.Context, accountID string, update EmailAccountUpdate) (Envelope[map[string]any], error) {
	if err := requireID("account id", accountID); err != nil {
		return Envelope[map[string]any]{}, err
	}
	return decode[Envelope[map[string]any]](c.Put(ctx, routepath.EmailAccount(accountID), update))
}

// DeleteEmailAccount removes a mailbox.
func (c *Client) DeleteEmailAccount(ctx context.Context, accountID string) (Envelope[map[string]any], error) {
	if err := requireID("account id", accountID); err != nil {
		return Envelope[map[string]any]{}, err
	}
	return decode[Envelope[map[string]any]](c.Delete(ctx, routepath.EmailAccount(accountID)))
}

// EmailStatistics fetches global mailbox statistics.
func (c *Client) EmailStatistics(ctx context.Context) (Envelope[EmailStatistics], error) {
	return decode[Envelope[EmailStatistics]](c.Get(ctx, routepath.EmailStatistics, nil))
}

// EmailMessages lists processed messages filtered by params.
func (c *Client) EmailMessages(ctx context.Context, params Params) (Envelope[EmailMessageList], error) {
	return decode[Envelope[EmailMessageList]](c.Get(ctx, routepath.EmailMessages, params))
}

// SendManualReply replies to a message by hand.
func (c *Client) SendManualReply(ctx context.Context, messageID, content string) (Envelope[map[string]any], error) {
	if err := requireID("message id", messageID); err != nil {
		return Envelope[map[string]any]{}, err
	}
	return decode[Envelope[map[string]any]](c.Post(ctx, routepath.EmailMessageReply(messageID), ManualReplyRequest{ReplyContent: content}))
}

// EscalateEmail flags a message for human follow-up.
func (c *Client) EscalateEmail(ctx context.Context, messageID, reason string) (Envelope[map[string]any], error) {
	if err := requireID("message id", messageID); err != nil {
		return Envelope[map[string]any]{}, err
	}
	return decode[Envelope[map[string]any]](c.Post(ctx, routepath.EmailMessageEscalate(messageID), EscalationRequest{EscalationReason: reason}))
}
