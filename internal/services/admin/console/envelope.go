package console

import (
	perrors "github.com/curkin/adminconsole/internal/platform/errors"
	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// unwrap returns the envelope data, or an error when the backend reported
// success=false.
func unwrap[T any](env api.Envelope[T], err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	if !env.Success {
		var zero T
		return zero, perrors.New(perrors.CodeRequestFailed, orDefault(env.Message, "request was not successful"))
	}
	return env.Data, nil
}

// done reports the message of a mutation envelope.
func (c *Console) done(env api.Envelope[map[string]any], err error, fallback string, args ...any) error {
	if _, err := unwrap(env, err); err != nil {
		return c.fail(err)
	}
	if env.Message != "" {
		c.status("%s", env.Message)
		return nil
	}
	c.status(fallback, args...)
	return nil
}
