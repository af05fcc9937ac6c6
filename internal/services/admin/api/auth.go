package api

import (
	"context"
	"strings"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

// LoginRequest is the credential payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CurrentUser fetches the authenticated principal.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	return decode[User](c.Get(ctx, routepath.AuthMe, nil))
}

// Login exchanges credentials for a token. The raw response is returned so
// callers can persist it unchanged.
func (c *Client) Login(ctx context.Context, email, password string) (*Response, error) {
	return c.Post(ctx, routepath.AuthLogin, LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
}
