// Package session tracks the console's authenticated operator.
//
// A Session is created once per process and handed to the pages that need
// it. Init validates whatever credential is configured or persisted, Login
// and Logout move between the authenticated and anonymous states.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/curkin/adminconsole/internal/services/admin/api"
	"github.com/curkin/adminconsole/internal/services/admin/storage"
)

// ErrNotJSON is returned when the login endpoint answers with a non-JSON body.
var ErrNotJSON = errors.New("login response is not JSON")

// Client is the subset of the API client the session uses.
type Client interface {
	AuthMode() api.Mode
	CurrentUser(ctx context.Context) (api.User, error)
	Login(ctx context.Context, email, password string) (*api.Response, error)
}

// Session holds the current user and the readiness of the auth check.
type Session struct {
	client Client
	store  storage.KeyValueStore

	mu      sync.RWMutex
	user    *api.User
	loading bool
}

// New returns a session that is loading until Init completes.
func New(client Client, store storage.KeyValueStore) *Session {
	return &Session{client: client, store: store, loading: true}
}

// Init resolves the startup auth state. It always leaves the session ready;
// the returned error explains why no user was established. A credential the
// backend rejects, or a persisted blob that cannot be read, is removed from
// the store.
func (s *Session) Init(ctx context.Context) error {
	defer s.setLoading(false)

	if s.client.AuthMode() == api.ModeAPIKey {
		user, err := s.client.CurrentUser(ctx)
		if err != nil {
			return s.reject(ctx, fmt.Errorf("verify api key: %w", err))
		}
		s.setUser(&user)
		return nil
	}

	record, ok, err := storage.LoadAuthRecord(ctx, s.store)
	if err != nil {
		s.setUser(nil)
		return err
	}
	if !ok {
		// Nothing stored, or a blob that is not a JSON object.
		s.setUser(nil)
		return s.clearToken(ctx)
	}
	if strings.TrimSpace(record.AccessToken) == "" {
		s.setUser(nil)
		return nil
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return s.reject(ctx, fmt.Errorf("verify session: %w", err))
	}
	s.setUser(&user)
	return nil
}

// reject drops the user and the persisted auth record after a failed check.
func (s *Session) reject(ctx context.Context, err error) error {
	s.setUser(nil)
	if clearErr := s.clearToken(ctx); clearErr != nil {
		return errors.Join(err, clearErr)
	}
	return err
}

// Login submits credentials, persists the response under storage.AuthKey and
// loads the current user. On login failure the user is left unset and the
// current-user endpoint is not called.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if !resp.IsJSON() {
		return ErrNotJSON
	}
	if s.store == nil {
		return errors.New("credential store is not configured")
	}
	if err := s.store.PutValue(ctx, storage.AuthKey, resp.Bytes()); err != nil {
		return fmt.Errorf("persist auth record: %w", err)
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return err
	}
	s.setUser(&user)
	return nil
}

// Logout clears the in-memory user. In bearer mode the persisted token is
// removed too; an API key is not session-scoped and is left alone.
func (s *Session) Logout(ctx context.Context) error {
	s.setUser(nil)
	if s.client.AuthMode() == api.ModeAPIKey {
		return nil
	}
	return s.clearToken(ctx)
}

// User returns the current user, if any.
func (s *Session) User() (api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return api.User{}, false
	}
	return *s.user, true
}

// Ready reports whether the startup auth check has finished.
func (s *Session) Ready() bool {
	return !s.Loading()
}

// Loading reports whether the startup auth check is still running.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// TokenExpiry reads the exp claim of the persisted bearer token without
// verifying its signature. ok is false when no token is stored or the token
// is not a JWT carrying exp.
func (s *Session) TokenExpiry(ctx context.Context) (expiry time.Time, ok bool, err error) {
	record, found, err := storage.LoadAuthRecord(ctx, s.store)
	if err != nil || !found || record.AccessToken == "" {
		return time.Time{}, false, err
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(record.AccessToken, &claims); err != nil {
		return time.Time{}, false, nil
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false, nil
	}
	return claims.ExpiresAt.Time, true, nil
}

func (s *Session) clearToken(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.DeleteValue(ctx, storage.AuthKey); err != nil {
		return fmt.Errorf("clear auth record: %w", err)
	}
	return nil
}

func (s *Session) setUser(user *api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

func (s *Session) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}
