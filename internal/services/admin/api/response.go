package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	perrors "github.com/curkin/adminconsole/internal/platform/errors"
)

// Response is a successful API response. JSON bodies are parsed into JSON;
// every other content type is kept verbatim in Text.
type Response struct {
	Status      int
	ContentType string
	JSON        any
	Text        string

	raw []byte
}

func newResponse(status int, contentType string, body []byte) (*Response, error) {
	resp := &Response{Status: status, ContentType: contentType, raw: body}
	if !strings.Contains(strings.ToLower(contentType), "application/json") {
		resp.Text = string(body)
		return resp, nil
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return resp, nil
	}
	if err := json.Unmarshal(body, &resp.JSON); err != nil {
		return nil, &Error{
			Code:    perrors.CodeDecodeFailed,
			Status:  status,
			Message: fmt.Sprintf("decode response: %v", err),
			Cause:   err,
		}
	}
	return resp, nil
}

// IsJSON reports whether the body was parsed as JSON.
func (r *Response) IsJSON() bool {
	return strings.Contains(strings.ToLower(r.ContentType), "application/json")
}

// Value returns the parsed JSON value, or the raw text for non-JSON bodies.
func (r *Response) Value() any {
	if r.IsJSON() {
		return r.JSON
	}
	return r.Text
}

// Bytes returns the raw response body.
func (r *Response) Bytes() []byte {
	return r.raw
}

// Decode unmarshals a JSON body into v. An empty body leaves v unchanged.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.raw)) == 0 {
		return nil
	}
	if !r.IsJSON() {
		return &Error{
			Code:    perrors.CodeDecodeFailed,
			Status:  r.Status,
			Message: fmt.Sprintf("expected JSON response, got %q", r.ContentType),
		}
	}
	if err := json.Unmarshal(r.raw, v); err != nil {
		return &Error{
			Code:    perrors.CodeDecodeFailed,
			Status:  r.Status,
			Message: fmt.Sprintf("decode response: %v", err),
			Cause:   err,
		}
	}
	return nil
}

// Envelope is the {success, data, message} wrapper used by the integration
// endpoints.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

func decode[T any](resp *Response, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := resp.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
