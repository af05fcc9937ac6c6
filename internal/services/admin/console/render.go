package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"

	perrors "github.com/curkin/adminconsole/internal/platform/errors"
)

// Format selects how pages print their data.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an output format name. Empty means table.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", perrors.New(perrors.CodeConfigInvalid, fmt.Sprintf("unsupported output format %q (want table, json or yaml)", value))
	}
}

// emit prints data in the structured formats, or calls table for the
// default text view.
func (c *Console) emit(data any, table func(w io.Writer)) error {
	switch c.format {
	case FormatJSON:
		encoder := json.NewEncoder(c.out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = c.out.Write(out)
		return err
	default:
		table(c.out)
		return nil
	}
}

// structured reports whether output is a machine-readable document, in
// which case pages skip headings and status lines.
func (c *Console) structured() bool {
	return c.format == FormatJSON || c.format == FormatYAML
}

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(headers) > 0 {
		fmt.Fprintln(tw, strings.Join(headers, "\t"))
	}
	return tw
}

func row(tw *tabwriter.Writer, cells ...any) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprint(cell)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

func (c *Console) heading(w io.Writer, title string) {
	fmt.Fprintln(w, c.palette.bold(title))
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
}

func (c *Console) section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, c.palette.bold(title))
}

// field prints a label/value pair line.
func field(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "  %-24s %v\n", label+":", value)
}

// status prints a non-data line (success notices, empty states). Structured
// formats send it to the error stream so stdout stays parseable.
func (c *Console) status(format string, args ...any) {
	w := c.out
	if c.structured() {
		w = c.errOut
	}
	fmt.Fprintln(w, c.printer.Sprintf(format, args...))
}

func (c *Console) empty(what string) {
	c.status("No %s found.", what)
}

// fail prints err inline and returns it.
func (c *Console) fail(err error) error {
	if err == nil {
		return nil
	}
	fmt.Fprintln(c.errOut, c.palette.red(c.printer.Sprintf("Error: %s", err.Error())))
	if hint := perrors.CodeOf(err).Hint(); hint != "" {
		fmt.Fprintln(c.errOut, c.printer.Sprintf("Hint: %s", hint))
	}
	return err
}

// Fail prints err the way pages do and returns it.
func (c *Console) Fail(err error) error {
	return c.fail(err)
}
