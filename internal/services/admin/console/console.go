package console

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/curkin/adminconsole/internal/platform/timeouts"
	"github.com/curkin/adminconsole/internal/services/admin/api"
	"github.com/curkin/adminconsole/internal/services/admin/i18n"
	"github.com/curkin/adminconsole/internal/services/admin/session"
)

// Page sizes used by the paginated log pages.
const (
	LogPageSize     = 20
	MessageListSize = 50
	MeetingListSize = 50
)

// Options configures a Console.
type Options struct {
	Out    io.Writer
	ErrOut io.Writer
	In     io.Reader

	Format   Format
	Language language.Tag

	// AssumeYes answers every confirmation prompt affirmatively.
	AssumeYes bool
	// Interactive overrides terminal detection on In.
	Interactive *bool
	// Color overrides terminal detection on Out.
	Color *bool

	RefreshInterval time.Duration
	Now             func() time.Time
}

// Console renders pages against one API client and session.
type Console struct {
	client  *api.Client
	session *session.Session

	out    io.Writer
	errOut io.Writer
	in     io.Reader

	format      Format
	tag         language.Tag
	printer     *message.Printer
	assumeYes   bool
	interactive bool
	palette     palette
	refresh     time.Duration
	now         func() time.Time
}

// New builds a Console. Nil writers and readers default to the process
// standard streams.
func New(client *api.Client, sess *session.Session, opts Options) *Console {
	c := &Console{
		client:    client,
		session:   sess,
		out:       opts.Out,
		errOut:    opts.ErrOut,
		in:        opts.In,
		format:    opts.Format,
		tag:       opts.Language,
		assumeYes: opts.AssumeYes,
		refresh:   opts.RefreshInterval,
		now:       opts.Now,
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.errOut == nil {
		c.errOut = os.Stderr
	}
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.format == "" {
		c.format = FormatTable
	}
	if c.tag == language.Und {
		c.tag = i18n.Default()
	}
	if c.refresh <= 0 {
		c.refresh = timeouts.PageRefresh
	}
	if c.now == nil {
		c.now = time.Now
	}
	c.printer = i18n.Printer(c.tag)

	if opts.Interactive != nil {
		c.interactive = *opts.Interactive
	} else {
		c.interactive = isTerminal(c.in)
	}
	useColor := isTerminal(c.out)
	if opts.Color != nil {
		useColor = *opts.Color
	}
	c.palette = newPalette(useColor)
	return c
}

// Session returns the console's session.
func (c *Console) Session() *session.Session {
	return c.session
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
