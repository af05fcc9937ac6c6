package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	perrors "github.com/curkin/adminconsole/internal/platform/errors"
)

// ErrBaseURLMissing is returned before any network attempt when no base URL
// is configured.
var ErrBaseURLMissing = &Error{
	Code:    perrors.CodeConfigBaseURLMissing,
	Message: "API base URL is not configured. Please set CURKIN_ADMIN_API_BASE_URL.",
}

// Error is a failed API call. Error returns the operator-facing message only.
type Error struct {
	Code    perrors.Code
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrorCode implements perrors.Coded.
func (e *Error) ErrorCode() perrors.Code {
	return e.Code
}

// Is matches another *Error by code, or the ErrBaseURLMissing sentinel.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	if other.Status != 0 && other.Status != e.Status {
		return false
	}
	return e.Code == other.Code
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func statusError(status int, body []byte) *Error {
	message := messageFromBody(body)
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}
	return &Error{Code: perrors.CodeRequestFailed, Status: status, Message: message}
}

func transportError(err error) *Error {
	return &Error{Code: perrors.CodeRequestFailed, Message: err.Error(), Cause: err}
}

// messageFromBody extracts detail, then message, then error from a JSON
// object. A detail list of {msg} objects is joined with "; ".
func messageFromBody(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, field := range []string{"detail", "message", "error"} {
		raw, ok := payload[field]
		if !ok {
			continue
		}
		if text := rawMessageText(raw); text != "" {
			return text
		}
	}
	return ""
}

func rawMessageText(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if msg := strings.TrimSpace(item.Msg); msg != "" {
				parts = append(parts, msg)
			}
		}
		return strings.Join(parts, "; ")
	}
	return ""
}
