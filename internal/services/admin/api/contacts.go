package api

import (
	"context"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

// Contact statuses.
const (
	ContactStatusNew        = "new"
	ContactStatusContacted  = "contacted"
	ContactStatusInProgress = "in_progress"
	ContactStatusResolved   = "resolved"
	ContactStatusClosed     = "closed"
)

// Contact is an inbound contact-form submission.
type Contact struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	Message   string `json:"message,omitempty"`
	Status    string `json:"status"`
	Purpose   string `json:"purpose,omitempty"`
	Source    string `json:"source,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ContactStatistics summarizes contacts by status.
type ContactStatistics struct {
	TotalContacts      int `json:"total_contacts"`
	NewContacts        int `json:"new_contacts"`
	InProgressContacts int `json:"in_progress_contacts"`
	ResolvedContacts   int `json:"resolved_contacts"`
}

// ContactFilter narrows the contact list. Empty fields are not sent.
type ContactFilter struct {
	Status  string
	Purpose string
	Search  string
}

func (f ContactFilter) params() Params {
	return Params{}.AddIfSet("status", f.Status).AddIfSet("purpose", f.Purpose).AddIfSet("search", f.Search)
}

// ContactUpdate is a partial PATCH payload for a contact.
type ContactUpdate struct {
	Status *string `json:"status,omitempty" validate:"omitnil,oneof=new contacted in_progress resolved closed"`
}

// Contacts lists contacts matching filter.
func (c *Client) Contacts(ctx context.Context, filter ContactFilter) (Envelope[[]Contact], error) {
	return decode[Envelope[[]Contact]](c.Get(ctx, routepath.Contacts, filter.params()))
}

// ContactStats fetches contact statistics.
func (c *Client) ContactStats(ctx context.Context) (Envelope[ContactStatistics], error) {
	return decode[Envelope[ContactStatistics]](c.Get(ctx, routepath.ContactStats, nil))
}

// UpdateContact updates a contact.
func (c *Client) UpdateContact(ctx context.Context, contactID string, update ContactUpdate) (Envelope[map[string]any], error) {
	if err := requireID("contact id", contactID); err != nil {
		return Envelope[map[string]any]{}, err
	}
	return decode[Envelope[map[string]any]](c.Patch(ctx, routepath.Contact(contactID), update))
}

// DeleteContact removes a contact.
func (c *Client) DeleteContact(ctx context.Context, contactID string) (Envelope[map[string]any], error) {
	if err := requireID("contact id", contactID); err != nil {
		return Envelope[map[string]any]{}, err
	}
	return decode[Envelope[map[string]any]](c.Delete(ctx, routepath.Contact(contactID)))
}
