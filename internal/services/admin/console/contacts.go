package console

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// ContactsView is the contact management page.
type ContactsView struct {
	Contacts []api.Contact        `json:"contacts"`
	Stats    api.ContactStatistics `json:"statistics"`
}

// Contacts renders contacts matching filter with the status statistics.
func (c *Console) Contacts(ctx context.Context, filter api.ContactFilter) error {
	var view ContactsView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		view.Contacts, err = unwrap(c.client.Contacts(gctx, filter))
		return err
	})
	g.Go(func() (err error) {
		view.Stats, err = unwrap(c.client.ContactStats(gctx))
		return err
	})
	if err := g.Wait(); err != nil {
		return c.fail(err)
	}

	now := c.now()
	return c.emit(view, func(w io.Writer) {
		p := c.printer
		c.heading(w, "Contact Management")
		field(w, "Total", p.Sprintf("%d", view.Stats.TotalContacts))
		field(w, "New", p.Sprintf("%d", view.Stats.NewContacts))
		field(w, "In Progress", p.Sprintf("%d", view.Stats.InProgressContacts))
		field(w, "Resolved", p.Sprintf("%d", view.Stats.ResolvedContacts))

		c.section(w, "Contacts")
		if len(view.Contacts) == 0 {
			fmt.Fprintln(w, p.Sprintf("No %s found.", "contacts"))
			return
		}
		tw := newTable(w, "ID", "NAME", "EMAIL", "COMPANY", "PURPOSE", "STATUS", "RECEIVED")
		for _, ct := range view.Contacts {
			row(tw, ct.ID, ct.Name, ct.Email, orDefault(ct.Company, "-"), titleCase(orDefault(ct.Purpose, "-")),
				c.palette.status(ct.Status), formatRelative(ct.CreatedAt, now))
		}
		tw.Flush()
	})
}

// SetContactStatus moves a contact to status and re-renders the list.
func (c *Console) SetContactStatus(ctx context.Context, contactID, status string) error {
	env, err := c.client.UpdateContact(ctx, contactID, api.ContactUpdate{Status: &status})
	if err := c.done(env, err, "Contact %s marked %s.", contactID, status); err != nil {
		return err
	}
	return c.Contacts(ctx, api.ContactFilter{})
}

// DeleteContact removes a contact after confirmation.
func (c *Console) DeleteContact(ctx context.Context, contactID string) error {
	if err := c.confirm("delete contact " + contactID); err != nil {
		return c.fail(err)
	}
	env, err := c.client.DeleteContact(ctx, contactID)
	if err := c.done(env, err, "Deleted contact %s.", contactID); err != nil {
		return err
	}
	return c.Contacts(ctx, api.ContactFilter{})
}
