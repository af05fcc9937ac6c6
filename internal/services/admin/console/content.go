package console

import (
	"context"
	"fmt"
	"io"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// ContentView is the business type and template catalogue.
type ContentView struct {
	BusinessTypes []api.BusinessType `json:"business_types"`
	Templates     api.EmailTemplates `json:"templates"`
}

// Content renders business types and templates, keeping only entries whose
// key or name contains search.
func (c *Console) Content(ctx context.Context, search string) error {
	var view ContentView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		view.BusinessTypes, err = c.client.BusinessTypes(gctx)
		return err
	})
	g.Go(func() (err error) {
		view.Templates, err = c.client.EmailTemplates(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return c.fail(err)
	}
	view = filterContent(view, search)

	return c.emit(view, func(w io.Writer) {
		c.heading(w, "Content Management")
		c.section(w, "Business Types")
		if len(view.BusinessTypes) == 0 {
			fmt.Fprintln(w, c.printer.Sprintf("No %s found.", "business types"))
		} else {
			tw := newTable(w, "KEY", "NAME")
			for _, bt := range view.BusinessTypes {
				row(tw, bt.Key, bt.Name)
			}
			tw.Flush()
		}

		c.section(w, "Email Templates")
		if len(view.Templates) == 0 {
			fmt.Fprintln(w, c.printer.Sprintf("No %s found.", "templates"))
			return
		}
		tw := newTable(w, "TEMPLATE", "DEFINITION")
		for _, name := range sortedKeys(view.Templates) {
			row(tw, name, truncate(detailsText(view.Templates[name]), 80))
		}
		tw.Flush()
	})
}

func filterContent(view ContentView, search string) ContentView {
	if search == "" {
		return view
	}
	out := ContentView{Templates: api.EmailTemplates{}}
	for _, bt := range view.BusinessTypes {
		if containsFold(bt.Key, search) || containsFold(bt.Name, search) {
			out.BusinessTypes = append(out.BusinessTypes, bt)
		}
	}
	for name, def := range view.Templates {
		if containsFold(name, search) {
			out.Templates[name] = def
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
