package console

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	perrors "github.com/curkin/adminconsole/internal/platform/errors"
	"github.com/curkin/adminconsole/internal/services/admin/api"
)

func authBackend(t *testing.T, b *backend, token string) {
	t.Helper()
	b.handle(http.MethodPost, "/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			jsonReply(http.StatusUnauthorized, map[string]any{"detail": "Invalid credentials"})(w, r)
			return
		}
		jsonReply(http.StatusOK, map[string]any{"access_token": token, "token_type": "bearer"})(w, r)
	})
	b.handle(http.MethodGet, "/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token && r.Header.Get(api.APIKeyHeader) != "key-1" {
			jsonReply(http.StatusUnauthorized, map[string]any{"detail": "Not authenticated"})(w, r)
			return
		}
		jsonReply(http.StatusOK, api.User{ID: "u1", Email: "ops@example.com", Name: "Ops", Role: "admin"})(w, r)
	})
}

func signedToken(t *testing.T, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expires)})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestWhoAmIRequiresSignIn(t *testing.T) {
	b := newBackend(t)
	h := newHarness(t, b)

	err := h.console.WhoAmI(context.Background())
	if perrors.CodeOf(err) != perrors.CodeUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	if !strings.Contains(h.errOut.String(), "admin login") {
		t.Fatalf("expected login hint, got %q", h.errOut.String())
	}
}

func TestLoginWhoAmILogout(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t)
	token := signedToken(t, fixedNow.Add(2*time.Hour))
	authBackend(t, b, token)
	h := newHarness(t, b)

	if err := h.console.Login(ctx, "ops@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(h.out.String(), "Signed in as ops@example.com.") {
		t.Fatalf("expected sign-in line, got %q", h.out.String())
	}

	h.out.Reset()
	if err := h.console.WhoAmI(ctx); err != nil {
		t.Fatalf("whoami: %v", err)
	}
	out := h.out.String()
	for _, want := range []string{"ops@example.com", "bearer", "2 hours from now"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in whoami, got:\n%s", want, out)
		}
	}

	if err := h.console.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := h.console.RequireUser(); err == nil {
		t.Fatal("expected no user after logout")
	}
	if _, err := h.store.GetValue(ctx, "auth"); err == nil {
		t.Fatal("expected persisted token to be cleared")
	}
}

func TestLoginFailureIsReported(t *testing.T) {
	b := newBackend(t)
	authBackend(t, b, "tok")
	h := newHarness(t, b)

	err := h.console.Login(context.Background(), "ops@example.com", "wrong")
	if err == nil || err.Error() != "Invalid credentials" {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if !strings.Contains(h.errOut.String(), "Error: Invalid credentials") {
		t.Fatalf("expected inline error, got %q", h.errOut.String())
	}
}

func TestWhoAmIInAPIKeyMode(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t)
	authBackend(t, b, "tok")
	h := newHarness(t, b, withAPIKey("key-1"), withFormat(FormatJSON))

	if err := h.console.Session().Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := h.console.WhoAmI(ctx); err != nil {
		t.Fatalf("whoami: %v", err)
	}
	var got WhoAmI
	if err := json.Unmarshal(h.out.Bytes(), &got); err != nil {
		t.Fatalf("decode whoami: %v", err)
	}
	if got.Mode != api.ModeAPIKey || got.User.ID != "u1" || got.ExpiresAt != "" {
		t.Fatalf("unexpected whoami %+v", got)
	}
}
