// Package admin wires the admin console command: configuration, the
// credential store, the API client and the page dispatcher.
package admin

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"

	platformcmd "github.com/curkin/adminconsole/internal/platform/cmd"
	"github.com/curkin/adminconsole/internal/platform/config"
	perrors "github.com/curkin/adminconsole/internal/platform/errors"
	"github.com/curkin/adminconsole/internal/platform/timeouts"
	"github.com/curkin/adminconsole/internal/services/admin/api"
	"github.com/curkin/adminconsole/internal/services/admin/console"
	"github.com/curkin/adminconsole/internal/services/admin/i18n"
	"github.com/curkin/adminconsole/internal/services/admin/session"
	"github.com/curkin/adminconsole/internal/services/admin/storage"
	"github.com/curkin/adminconsole/internal/services/admin/storage/sqlite"
)

// Environment variables read by the admin command.
const (
	EnvBaseURL   = "CURKIN_ADMIN_API_BASE_URL"
	EnvAPIKey    = "CURKIN_ADMIN_API_KEY"
	EnvUseAPIKey = "CURKIN_ADMIN_USE_API_KEY"
	EnvDBPath    = "CURKIN_ADMIN_DB_PATH"
	EnvTimeout   = "CURKIN_ADMIN_TIMEOUT"
	EnvOutput    = "CURKIN_ADMIN_OUTPUT"
	EnvLang      = "CURKIN_ADMIN_LANG"
	EnvDebug     = "CURKIN_ADMIN_DEBUG"
)

var envKeys = []string{EnvBaseURL, EnvAPIKey, EnvUseAPIKey, EnvDBPath, EnvTimeout, EnvOutput, EnvLang, EnvDebug}

// Config holds the admin command configuration.
type Config struct {
	BaseURL   string        `env:"CURKIN_ADMIN_API_BASE_URL"`
	APIKey    string        `env:"CURKIN_ADMIN_API_KEY"`
	UseAPIKey bool          `env:"CURKIN_ADMIN_USE_API_KEY" envDefault:"false"`
	DBPath    string        `env:"CURKIN_ADMIN_DB_PATH" envDefault:"data/admin.db"`
	Timeout   time.Duration `env:"CURKIN_ADMIN_TIMEOUT" envDefault:"30s"`
	Output    string        `env:"CURKIN_ADMIN_OUTPUT" envDefault:"table"`
	Lang      string        `env:"CURKIN_ADMIN_LANG"`
	Debug     bool          `env:"CURKIN_ADMIN_DEBUG"`

	AssumeYes bool          `env:"-"`
	Refresh   time.Duration `env:"-"`

	// Language is resolved from Lang and the POSIX locale variables.
	Language language.Tag `env:"-"`
	// Command and Args are the positional arguments after the flags.
	Command string   `env:"-"`
	Args    []string `env:"-"`
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig loads the environment through lookup, then applies flags.
// A nil lookup reads the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	var cfg Config
	if err := config.ParseEnvFrom(&cfg, environ(lookup)); err != nil {
		return Config{}, perrors.Wrap(perrors.CodeConfigInvalid, fmt.Sprintf("load environment: %v", err), err)
	}

	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "backend API base URL")
	fs.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "API key sent as "+api.APIKeyHeader)
	fs.BoolVar(&cfg.UseAPIKey, "use-api-key", cfg.UseAPIKey, "authenticate with the API key instead of a login token")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the local credential database")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output format: table, json or yaml")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "console language (en, pt-BR)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log every API request")
	fs.BoolVar(&cfg.AssumeYes, "yes", false, "answer yes to confirmation prompts")
	fs.DurationVar(&cfg.Refresh, "refresh", timeouts.PageRefresh, "refresh interval for -watch")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Language = i18n.ResolveTag(cfg.Lang, lookupValue(lookup, "LC_ALL"), lookupValue(lookup, "LANG"))
	if rest := fs.Args(); len(rest) > 0 {
		cfg.Command = rest[0]
		cfg.Args = rest[1:]
	}
	return cfg, nil
}

func environ(lookup EnvLookup) map[string]string {
	if lookup == nil {
		return nil
	}
	values := make(map[string]string, len(envKeys))
	for _, key := range envKeys {
		if value, ok := lookup(key); ok {
			values[key] = value
		}
	}
	return values
}

func lookupValue(lookup EnvLookup, key string) string {
	if lookup == nil {
		return os.Getenv(key)
	}
	value, _ := lookup(key)
	return value
}

// Streams are the process streams a run reads and writes.
type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// Run executes the configured command.
func Run(ctx context.Context, cfg Config, streams Streams) error {
	if streams.Out == nil {
		streams.Out = os.Stdout
	}
	if streams.ErrOut == nil {
		streams.ErrOut = os.Stderr
	}
	if streams.In == nil {
		streams.In = os.Stdin
	}

	cmd, args, ok := lookupCommand(cfg.Command, cfg.Args)
	if !ok {
		printUsage(streams.ErrOut)
		if cfg.Command == "" {
			return report(streams.ErrOut, perrors.New(perrors.CodeUsage, "a command is required"))
		}
		return report(streams.ErrOut, perrors.New(perrors.CodeUsage, fmt.Sprintf("unknown command %q", cfg.Command)))
	}
	if cmd.name == "help" {
		printUsage(streams.Out)
		return nil
	}
	if cmd.name == "env" {
		return checkEnvironment(cfg, streams.Out)
	}

	format, err := console.ParseFormat(cfg.Output)
	if err != nil {
		return report(streams.ErrOut, err)
	}

	store, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return report(streams.ErrOut, fmt.Errorf("open credential store: %w", err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close credential store: %v", err)
		}
	}()

	client := api.New(api.Config{
		BaseURL:   cfg.BaseURL,
		APIKey:    cfg.APIKey,
		UseAPIKey: cfg.UseAPIKey,
		Timeout:   cfg.Timeout,
		Debug:     cfg.Debug,
	}, storage.TokenSource{Store: store})
	sess := session.New(client, store)
	cons := console.New(client, sess, console.Options{
		Out:             streams.Out,
		ErrOut:          streams.ErrOut,
		In:              streams.In,
		Format:          format,
		Language:        cfg.Language,
		AssumeYes:       cfg.AssumeYes,
		RefreshInterval: cfg.Refresh,
	})

	if cmd.protected {
		if err := sess.Init(ctx); err != nil {
			if !sessionExpired(client.AuthMode(), err) {
				return cons.Fail(err)
			}
			if cfg.Debug {
				log.Printf("restore session: %v", err)
			}
		}
		if err := cons.RequireUser(); err != nil {
			return err
		}
	}

	if !cmd.watch {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeouts.Command)
		defer cancel()
	}
	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	fs.SetOutput(streams.ErrOut)
	return cmd.run(ctx, &invocation{console: cons, flags: fs, args: args, in: streams.In, errOut: streams.ErrOut})
}

// sessionExpired reports whether err only means the persisted bearer token was
// rejected. RequireUser explains that case with a login hint.
func sessionExpired(mode api.Mode, err error) bool {
	return mode == api.ModeBearer && api.StatusOf(err) == http.StatusUnauthorized
}

// report prints an error raised before a page could render it.
func report(w io.Writer, err error) error {
	fmt.Fprintf(w, "Error: %v\n", err)
	if hint := perrors.CodeOf(err).Hint(); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
	return err
}
