package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// UserFilter narrows the user list locally.
type UserFilter struct {
	Search string
	Role   string
	// Status is one of active, inactive, verified or unverified.
	Status string
}

// Match reports whether u passes the filter.
func (f UserFilter) Match(u api.User) bool {
	if f.Search != "" && !containsFold(u.Name, f.Search) && !containsFold(u.Email, f.Search) {
		return false
	}
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	switch f.Status {
	case "":
		return true
	case "active":
		return u.IsActive
	case "inactive":
		return !u.IsActive
	case "verified":
		return u.IsVerified
	case "unverified":
		return !u.IsVerified
	default:
		return false
	}
}

// FilterUsers applies f to users.
func FilterUsers(users []api.User, f UserFilter) []api.User {
	out := make([]api.User, 0, len(users))
	for _, u := range users {
		if f.Match(u) {
			out = append(out, u)
		}
	}
	return out
}

// Users renders the user list.
func (c *Console) Users(ctx context.Context, filter UserFilter) error {
	users, err := c.client.ListUsers(ctx, 0, 0)
	if err != nil {
		return c.fail(err)
	}
	users = FilterUsers(users, filter)
	if len(users) == 0 {
		c.empty("users")
		return nil
	}
	now := c.now()
	return c.emit(users, func(w io.Writer) {
		c.heading(w, "User Management")
		tw := newTable(w, "ID", "NAME", "EMAIL", "ROLE", "STATUS", "VERIFIED", "LAST SEEN", "CREATED")
		for _, u := range users {
			active := c.palette.badge(toneGood, "active")
			if !u.IsActive {
				active = c.palette.badge(toneBad, "inactive")
			}
			row(tw, u.ID, u.Name, u.Email, c.palette.badge(roleTone(u.Role), u.Role), active,
				yesNo(u.IsVerified), formatRelative(orDefault(u.LastSeenAt, u.LastLogin), now), formatTimestamp(u.CreatedAt))
		}
		tw.Flush()
		fmt.Fprintln(w, c.printer.Sprintf("%d users", len(users)))
	})
}

// ShowUser renders one user's details.
func (c *Console) ShowUser(ctx context.Context, userID string) error {
	user, err := c.client.GetUser(ctx, userID)
	if err != nil {
		return c.fail(err)
	}
	return c.emit(user, func(w io.Writer) {
		c.heading(w, "User "+user.ID)
		field(w, "Name", user.Name)
		field(w, "Email", user.Email)
		field(w, "Role", c.palette.badge(roleTone(user.Role), user.Role))
		field(w, "Active", yesNo(user.IsActive))
		field(w, "Verified", yesNo(user.IsVerified))
		field(w, "Last Login", formatTimestamp(user.LastLogin))
		field(w, "Created", formatTimestamp(user.CreatedAt))
	})
}

// CreateUser registers an account and re-renders the list.
func (c *Console) CreateUser(ctx context.Context, req api.CreateUserRequest) error {
	if _, err := c.client.CreateUser(ctx, req); err != nil {
		return c.fail(err)
	}
	c.status("Created user %s.", strings.TrimSpace(req.Email))
	return c.Users(ctx, UserFilter{})
}

// UpdateUser patches an account and re-renders the list.
func (c *Console) UpdateUser(ctx context.Context, userID string, update api.UpdateUserRequest) error {
	if _, err := c.client.UpdateUser(ctx, userID, update); err != nil {
		return c.fail(err)
	}
	c.status("Updated user %s.", userID)
	return c.Users(ctx, UserFilter{})
}

// DeleteUser deletes an account after confirmation and re-renders the list.
func (c *Console) DeleteUser(ctx context.Context, userID string) error {
	if err := c.confirm("delete user " + userID); err != nil {
		return c.fail(err)
	}
	if _, err := c.client.DeleteUser(ctx, userID); err != nil {
		return c.fail(err)
	}
	c.status("Deleted user %s.", userID)
	return c.Users(ctx, UserFilter{})
}

// ForceLogoutUser revokes an account's sessions and re-renders the list.
func (c *Console) ForceLogoutUser(ctx context.Context, userID string) error {
	if _, err := c.client.ForceLogoutUser(ctx, userID); err != nil {
		return c.fail(err)
	}
	c.status("Logged out user %s from all sessions.", userID)
	return c.Users(ctx, UserFilter{})
}
