package api

import (
	"context"
	"strings"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

const defaultUserLimit = 100

// User is a platform account as returned by the admin endpoints.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
	LastLogin  string `json:"last_login,omitempty"`
	LastSeenAt string `json:"last_seen_at,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// CreateUserRequest is the payload for POST /auth/users.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=user admin"`
}

// UpdateUserRequest is the PATCH payload for a user. Nil fields are omitted.
type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty"`
	Role       *string `json:"role,omitempty" validate:"omitnil,oneof=user admin"`
	IsActive   *bool   `json:"is_active,omitempty"`
	IsVerified *bool   `json:"is_verified,omitempty"`
}

// ListUsers returns a page of users (skip 0, limit 100 when limit <= 0).
func (c *Client) ListUsers(ctx context.Context, skip, limit int) ([]User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultUserLimit
	}
	return decode[[]User](c.Get(ctx, routepath.Users, Params{}.AddInt("skip", skip).AddInt("limit", limit)))
}

// GetUser fetches one user.
func (c *Client) GetUser(ctx context.Context, userID string) (User, error) {
	if err := requireID("user id", userID); err != nil {
		return User{}, err
	}
	return decode[User](c.Get(ctx, routepath.User(userID), nil))
}

// UpdateUser patches a user and returns the backend's reply.
func (c *Client) UpdateUser(ctx context.Context, userID string, update UpdateUserRequest) (*Response, error) {
	if err := requireID("user id", userID); err != nil {
		return nil, err
	}
	return c.Patch(ctx, routepath.User(userID), update)
}

// DeleteUser deletes a user.
func (c *Client) DeleteUser(ctx context.Context, userID string) (*Response, error) {
	if err := requireID("user id", userID); err != nil {
		return nil, err
	}
	return c.Delete(ctx, routepath.User(userID))
}

// CreateUser registers a new account.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*Response, error) {
	req.Email = strings.TrimSpace(req.Email)
	if strings.TrimSpace(req.Role) == "" {
		req.Role = "user"
	}
	return c.Post(ctx, routepath.AuthUsers, req)
}

// ForceLogoutUser revokes every session of a user.
func (c *Client) ForceLogoutUser(ctx context.Context, userID string) (*Response, error) {
	if err := requireID("user id", userID); err != nil {
		return nil, err
	}
	return c.Post(ctx, routepath.UserLogout(userID), nil)
}
