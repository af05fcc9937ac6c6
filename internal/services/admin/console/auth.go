package console

import (
	"context"
	"io"

	perrors "github.com/curkin/adminconsole/internal/platform/errors"
	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// ErrNotSignedIn is returned by pages that need an authenticated operator.
var ErrNotSignedIn = perrors.New(perrors.CodeUnauthenticated, "not signed in")

// WhoAmI describes the signed-in operator.
type WhoAmI struct {
	User      api.User `json:"user"`
	Mode      api.Mode `json:"auth_mode"`
	ExpiresAt string   `json:"expires_at,omitempty"`
}

// Login signs in with email and password and shows the operator.
func (c *Console) Login(ctx context.Context, email, password string) error {
	if err := c.session.Login(ctx, email, password); err != nil {
		return c.fail(err)
	}
	user, _ := c.session.User()
	c.status("Signed in as %s.", orDefault(user.Email, email))
	return nil
}

// Logout signs out. In API key mode only the in-memory user is dropped.
func (c *Console) Logout(ctx context.Context) error {
	if err := c.session.Logout(ctx); err != nil {
		return c.fail(err)
	}
	if c.client.AuthMode() == api.ModeAPIKey {
		c.status("Signed out. API key mode stays active until it is disabled.")
		return nil
	}
	c.status("Signed out.")
	return nil
}

// WhoAmI renders the operator resolved by the session.
func (c *Console) WhoAmI(ctx context.Context) error {
	user, ok := c.session.User()
	if !ok {
		return c.fail(ErrNotSignedIn)
	}
	info := WhoAmI{User: user, Mode: c.client.AuthMode()}
	expiresLabel := "unknown"
	if info.Mode == api.ModeAPIKey {
		expiresLabel = "never (API key)"
	} else if expiry, ok, err := c.session.TokenExpiry(ctx); err == nil && ok {
		info.ExpiresAt = expiry.UTC().Format("2006-01-02T15:04:05Z")
		expiresLabel = formatRelative(info.ExpiresAt, c.now())
	}
	return c.emit(info, func(w io.Writer) {
		c.heading(w, "Signed In")
		field(w, "Name", orDefault(user.Name, "-"))
		field(w, "Email", user.Email)
		field(w, "Role", c.palette.badge(roleTone(user.Role), orDefault(user.Role, "user")))
		field(w, "Auth Mode", string(info.Mode))
		field(w, "Session Expires", expiresLabel)
	})
}

// RequireUser fails when the session has no operator.
func (c *Console) RequireUser() error {
	if _, ok := c.session.User(); !ok {
		return c.fail(ErrNotSignedIn)
	}
	return nil
}
