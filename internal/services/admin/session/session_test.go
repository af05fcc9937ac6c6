package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/mux"

	"github.com/curkin/adminconsole/internal/services/admin/api"
	"github.com/curkin/adminconsole/internal/services/admin/storage"
)

var adminUser = api.User{ID: "u1", Email: "admin@example.com", Name: "Admin", Role: "admin", IsActive: true}

// fakeBackend serves /auth/login and /auth/me. Valid credentials are
// admin@example.com / secret; the issued token is "tok-1". An API key of
// "key-1" is also accepted by /auth/me.
type fakeBackend struct {
	server   *httptest.Server
	meCalls  atomic.Int32
	meStatus atomic.Int32
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}
	router := mux.NewRouter()
	router.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		if req.Email != "admin@example.com" || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer"}`))
	}).Methods(http.MethodPost)
	router.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		fb.meCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if status := int(fb.meStatus.Load()); status != 0 {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"detail":"Token expired"}`))
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok-1" && r.Header.Get(api.APIKeyHeader) != "key-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(adminUser)
	}).Methods(http.MethodGet)
	fb.server = httptest.NewServer(router)
	t.Cleanup(fb.server.Close)
	return fb
}

func newSession(fb *fakeBackend, cfg api.Config, store storage.KeyValueStore) *Session {
	cfg.BaseURL = fb.server.URL
	client := api.New(cfg, storage.TokenSource{Store: store})
	return New(client, store)
}

func TestLoginWithValidCredentials(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend(t)
	store := storage.NewMemoryStore()
	s := newSession(fb, api.Config{}, store)

	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := s.Login(ctx, "admin@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	raw, err := store.GetValue(ctx, storage.AuthKey)
	if err != nil {
		t.Fatalf("expected persisted auth record: %v", err)
	}
	if string(raw) != `{"access_token":"tok-1","token_type":"bearer"}` {
		t.Fatalf("expected full login response persisted, got %s", raw)
	}
	user, ok := s.User()
	if !ok {
		t.Fatal("expected user after login")
	}
	if diff := cmp.Diff(adminUser, user); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}
}

func TestLoginWithInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend(t)
	store := storage.NewMemoryStore()
	s := newSession(fb, api.Config{}, store)
	_ = s.Init(ctx)

	err := s.Login(ctx, "admin@example.com", "wrong")
	if err == nil || err.Error() != "Invalid credentials" {
		t.Fatalf("expected inline error message, got %v", err)
	}
	if got := fb.meCalls.Load(); got != 0 {
		t.Fatalf("expected current-user fetch not attempted, got %d calls", got)
	}
	if _, ok := s.User(); ok {
		t.Fatal("expected user to remain unset")
	}
	if _, err := store.GetValue(ctx, storage.AuthKey); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected nothing persisted, got %v", err)
	}
}

func TestLogoutInBearerModeClearsToken(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend(t)
	store := storage.NewMemoryStore()
	s := newSession(fb, api.Config{}, store)
	_ = s.Init(ctx)
	if err := s.Login(ctx, "admin@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := s.User(); ok {
		t.Fatal("expected user cleared")
	}

	callsBefore := fb.meCalls.Load()
	next := newSession(fb, api.Config{}, store)
	if err := next.Init(ctx); err != nil {
		t.Fatalf("init after logout: %v", err)
	}
	if _, ok := next.User(); ok {
		t.Fatal("expected next start to be unauthenticated")
	}
	if !next.Ready() {
		t.Fatal("expected session ready")
	}
	if fb.meCalls.Load() != callsBefore {
		t.Fatal("expected no current-user fetch without a persisted token")
	}
}

func TestInitRestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend(t)
	store := storage.NewMemoryStore()
	_ = store.PutValue(ctx, storage.AuthKey, []byte(`{"access_token":"tok-1"}`))

	s := newSession(fb, api.Config{}, store)
	if !s.Loading() || s.Ready() {
		t.Fatal("expected session loading before init")
	}
	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if s.Loading() {
		t.Fatal("expected loading cleared after init")
	}
	if user, ok := s.User(); !ok || user.ID != "u1" {
		t.Fatalf("expected restored user, got %+v ok=%v", user, ok)
	}
}

func TestInitWithRejectedTokenClearsIt(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend(t)
	fb.meStatus.Store(http.StatusUnauthorized)
	store := storage.NewMemoryStore()
	_ = store.PutValue(ctx, storage.AuthKey, []byte(`{"access_token":"stale"}`))

	s := newSession(fb, api.Config{}, store)
	err := s.Init(ctx)
	if err == nil {
		t.Fatal("expected verification error")
	}
	if !s.Ready() {
		t.Fatal("expected session ready after failed verification")
	}
	if _, ok := s.User(); ok {
		t.Fatal("expected no user")
	}
	if _, err := store.GetValue(ctx, storage.AuthKey); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected token cleared, got %v", err)
	}
}

func TestInitWithBlankTokenSkipsVerification(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend(t)
	store := storage.NewMemoryStore()
	_ = store.PutValue(ctx, storage.AuthKey, []byte(`{"token_type":"bearer"}`))

	s := newSession(fb, api.Config{}, store)
	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if fb.meCalls.Load() != 0 {
		t.Fatal("expected no current-user fetch for a record without a token")
	}
}

func TestAPIKeyMode(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend(t)
	store := storage.NewMemoryStore()
	_ = store.PutValue(ctx, storage.AuthKey, []byte(`{"access_token":"other"}`))

	s := newSession(fb, api.Config{APIKey: "key-1", UseAPIKey: true}, store)
	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, ok := s.User(); !ok {
		t.Fatal("expected user via api key")
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := s.User(); ok {
		t.Fatal("expected in-memory user cleared")
	}
	if _, err := store.GetValue(ctx, storage.AuthKey); err != nil {
		t.Fatalf("expected persisted record untouched in api key mode, got %v", err)
	}
}

func TestAPIKeyModeFailureLeavesNoUser(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend(t)
	store := storage.NewMemoryStore()
	_ = store.PutValue(ctx, storage.AuthKey, []byte(`{"access_token":"tok-1"}`))

	s := newSession(fb, api.Config{APIKey: "wrong", UseAPIKey: true}, store)
	if err := s.Init(ctx); err == nil {
		t.Fatal("expected api key verification error")
	}
	if !s.Ready() {
		t.Fatal("expected ready")
	}
	if _, ok := s.User(); ok {
		t.Fatal("expected no user")
	}
	if _, err := store.GetValue(ctx, storage.AuthKey); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected persisted record cleared, got %v", err)
	}
}

func TestInitClearsUnreadableRecord(t *testing.T) {
	ctx := context.Background()
	fb := newFakeBackend(t)
	store := storage.NewMemoryStore()
	_ = store.PutValue(ctx, storage.AuthKey, []byte(`not json`))

	s := newSession(fb, api.Config{}, store)
	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !s.Ready() {
		t.Fatal("expected ready")
	}
	if fb.meCalls.Load() != 0 {
		t.Fatal("expected no current-user fetch for an unreadable record")
	}
	if _, err := store.GetValue(ctx, storage.AuthKey); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected unreadable record cleared, got %v", err)
	}
}

func TestTokenExpiry(t *testing.T) {
	ctx := context.Background()
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	tests := []struct {
		name   string
		stored string
		wantOK bool
	}{
		{name: "none"},
		{name: "opaque token", stored: `{"access_token":"opaque"}`},
		{name: "jwt", stored: `{"access_token":"` + signed + `"}`, wantOK: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			if tc.stored != "" {
				_ = store.PutValue(ctx, storage.AuthKey, []byte(tc.stored))
			}
			s := New(api.New(api.Config{}, nil), store)
			got, ok, err := s.TokenExpiry(ctx)
			if err != nil {
				t.Fatalf("token expiry: %v", err)
			}
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if ok && !got.Equal(exp) {
				t.Fatalf("expected expiry %s, got %s", exp, got)
			}
		})
	}
}

func TestLoginRejectsTextResponse(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	server := httptest.NewServer(router)
	defer server.Close()

	store := storage.NewMemoryStore()
	s := New(api.New(api.Config{BaseURL: server.URL}, storage.TokenSource{Store: store}), store)
	if err := s.Login(context.Background(), "admin@example.com", "secret"); !errors.Is(err, ErrNotJSON) {
		t.Fatalf("expected ErrNotJSON, got %v", err)
	}
}
