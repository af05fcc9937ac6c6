package api

import (
	"context"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

// BusinessType is a content category the analysis engine knows about.
type BusinessType struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// EmailTemplates maps template names to their backend definitions.
type EmailTemplates map[string]any

// BusinessTypes lists business types.
func (c *Client) BusinessTypes(ctx context.Context) ([]BusinessType, error) {
	return decode[[]BusinessType](c.Get(ctx, routepath.ContentBusinessTypes, nil))
}

// EmailTemplates fetches the template catalogue.
func (c *Client) EmailTemplates(ctx context.Context) (EmailTemplates, error) {
	return decode[EmailTemplates](c.Get(ctx, routepath.ContentTemplates, nil))
}
