package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	perrors "github.com/curkin/adminconsole/internal/platform/errors"
	"github.com/curkin/adminconsole/internal/platform/requestctx"
	"github.com/curkin/adminconsole/internal/platform/timeouts"
)

const (
	// APIKeyHeader carries the static API key.
	APIKeyHeader = "X-API-Key"
	// RequestIDHeader carries the per-call correlation id.
	RequestIDHeader = "X-Request-ID"

	tracerName = "github.com/curkin/adminconsole/internal/services/admin/api"
)

// Mode is the resolved authentication mode.
type Mode string

const (
	ModeAPIKey Mode = "api_key"
	ModeBearer Mode = "bearer"
)

// Config configures a Client.
type Config struct {
	BaseURL   string
	APIKey    string
	UseAPIKey bool
	Timeout   time.Duration
	Debug     bool
}

// TokenSource yields the current bearer token. An empty token means no
// Authorization header is sent.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

// Token implements TokenSource.
func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// Option configures optional Client collaborators.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger routes debug logging to logger instead of the standard logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client issues authenticated requests against the admin backend. It is safe
// for concurrent use.
type Client struct {
	mu        sync.RWMutex
	baseURL   string
	apiKey    string
	useAPIKey bool
	debug     bool

	tokens     TokenSource
	httpClient *http.Client
	logger     *log.Logger
	tracer     trace.Tracer
}

// New builds a Client. tokens may be nil when only API-key mode is used.
func New(cfg Config, tokens TokenSource, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.APIRequest
	}
	c := &Client{
		baseURL:    strings.TrimSpace(cfg.BaseURL),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		useAPIKey:  cfg.UseAPIKey,
		debug:      cfg.Debug,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.Default(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// AuthMode reports API-key mode only when it is enabled and a key is set.
func (c *Client) AuthMode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.modeLocked()
}

func (c *Client) modeLocked() Mode {
	if c.useAPIKey && c.apiKey != "" {
		return ModeAPIKey
	}
	return ModeBearer
}

// SetAPIKey replaces the API key used in API-key mode.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = strings.TrimSpace(key)
}

// SetUseAPIKey toggles API-key mode.
func (c *Client) SetUseAPIKey(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.useAPIKey = enabled
}

// IsAuthenticated reports whether requests will carry credentials.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	if c.AuthMode() == ModeAPIKey {
		return true
	}
	token, err := c.token(ctx)
	return err == nil && token != ""
}

func (c *Client) token(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", nil
	}
	return c.tokens.Token(ctx)
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, endpoint string, params Params) (*Response, error) {
	return c.Do(ctx, http.MethodGet, endpoint, params, nil)
}

// Post issues a POST request. A nil body is sent as "{}".
func (c *Client) Post(ctx context.Context, endpoint string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, endpoint, nil, body)
}

// Patch issues a PATCH request. A nil body is sent as "{}".
func (c *Client) Patch(ctx context.Context, endpoint string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, endpoint, nil, body)
}

// Put issues a PUT request. A nil body is sent as "{}".
func (c *Client) Put(ctx context.Context, endpoint string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, endpoint, nil, body)
}

// Delete issues a DELETE request without a body.
func (c *Client) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, endpoint, nil, nil)
}

// Do sends one request and normalizes the outcome. Non-2xx statuses and
// transport failures return *Error.
func (c *Client) Do(ctx context.Context, method, endpoint string, params Params, body any) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	c.mu.RLock()
	baseURL, apiKey, mode, debug := c.baseURL, c.apiKey, c.modeLocked(), c.debug
	c.mu.RUnlock()

	if baseURL == "" {
		return nil, ErrBaseURLMissing
	}
	if err := validateRequest(body); err != nil {
		return nil, err
	}
	payload, err := encodeBody(method, body)
	if err != nil {
		return nil, err
	}
	target := buildURL(baseURL, endpoint, params)

	ctx, span := c.tracer.Start(ctx, "admin.api "+method+" "+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("admin.api.endpoint", endpoint),
			attribute.String("admin.api.auth_mode", string(mode)),
		),
	)
	defer span.End()

	ctx, requestID := requestctx.EnsureRequestID(ctx)
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, c.fail(span, &Error{Code: perrors.CodeRequestFailed, Message: fmt.Sprintf("build request: %v", err), Cause: err})
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	switch mode {
	case ModeAPIKey:
		req.Header.Set(APIKeyHeader, apiKey)
	default:
		token, err := c.token(ctx)
		if err != nil {
			return nil, c.fail(span, &Error{Code: perrors.CodeRequestFailed, Message: fmt.Sprintf("read auth token: %v", err), Cause: err})
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	if debug {
		c.logger.Printf("api request %s %s mode=%s request_id=%s", method, target, mode, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if debug {
			c.logger.Printf("api request %s %s failed: %v", method, target, err)
		}
		return nil, c.fail(span, transportError(err))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(span, &Error{Code: perrors.CodeRequestFailed, Status: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err), Cause: err})
	}
	if debug {
		c.logger.Printf("api response %s %s status=%d bytes=%d", method, target, resp.StatusCode, len(data))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(span, statusError(resp.StatusCode, data))
	}
	out, err := newResponse(resp.StatusCode, resp.Header.Get("Content-Type"), data)
	if err != nil {
		return nil, c.fail(span, err)
	}
	return out, nil
}

func (c *Client) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func encodeBody(method string, body any) ([]byte, error) {
	if body == nil {
		switch method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			return []byte("{}"), nil
		default:
			return nil, nil
		}
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Code: perrors.CodeRequestFailed, Message: fmt.Sprintf("encode request body: %v", err), Cause: err}
	}
	return data, nil
}
