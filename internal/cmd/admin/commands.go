package admin

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/term"

	perrors "github.com/curkin/adminconsole/internal/platform/errors"
	"github.com/curkin/adminconsole/internal/services/admin/console"
)

// command is one dispatchable console action. Names are a page ("users")
// or a page action ("users delete").
type command struct {
	name      string
	usage     string
	protected bool
	// watch marks pages that accept -watch and may run until interrupted.
	watch bool
	run   func(ctx context.Context, inv *invocation) error
}

// invocation carries what a command needs to parse its own flags and
// render.
type invocation struct {
	console *console.Console
	flags   *flag.FlagSet
	args    []string
	in      io.Reader
	errOut  io.Writer
}

func (inv *invocation) parse() error {
	if err := inv.flags.Parse(inv.args); err != nil {
		return perrors.Wrap(perrors.CodeUsage, err.Error(), err)
	}
	return nil
}

// arg returns the i-th positional argument left after flag parsing.
func (inv *invocation) arg(i int, name string) (string, error) {
	rest := inv.flags.Args()
	if i >= len(rest) || strings.TrimSpace(rest[i]) == "" {
		return "", inv.console.Fail(perrors.New(perrors.CodeUsage, fmt.Sprintf("%s is required", name)))
	}
	return rest[i], nil
}

// watchable renders page once, or keeps refreshing it with -watch.
func (inv *invocation) watchable(ctx context.Context, page func(context.Context) error) error {
	watch := inv.flags.Bool("watch", false, "refresh the page until interrupted")
	if err := inv.parse(); err != nil {
		return err
	}
	if *watch {
		return inv.console.Watch(ctx, page)
	}
	return page(ctx)
}

var commands = map[string]command{}

func register(cmds ...command) {
	for _, cmd := range cmds {
		commands[cmd.name] = cmd
	}
}

// lookupCommand resolves "page action" before "page".
func lookupCommand(name string, args []string) (command, []string, bool) {
	if len(args) > 0 {
		if cmd, ok := commands[name+" "+args[0]]; ok {
			return cmd, args[1:], true
		}
	}
	cmd, ok := commands[name]
	return cmd, args, ok
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "Usage: admin [flags] <command> [command flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-22s %s\n", name, commands[name].usage)
	}
}

func init() {
	register(
		command{name: "help", usage: "show this help"},
		command{name: "env", usage: "validate the environment configuration"},
		command{name: "login", usage: "sign in: login -email <email> [-password <password>]", run: runLogin},
		command{name: "logout", usage: "sign out and forget the stored token", run: runLogout},
		command{name: "whoami", usage: "show the signed-in operator", protected: true, run: runWhoAmI},
	)
	registerPages()
}

func runLogin(ctx context.Context, inv *invocation) error {
	email := inv.flags.String("email", "", "account email")
	password := inv.flags.String("password", "", "account password (prompted when empty)")
	if err := inv.parse(); err != nil {
		return err
	}
	if strings.TrimSpace(*email) == "" {
		return inv.console.Fail(perrors.New(perrors.CodeUsage, "-email is required"))
	}
	if *password == "" {
		value, err := promptPassword(inv.in, inv.errOut, "Password: ")
		if err != nil {
			return inv.console.Fail(err)
		}
		*password = value
	}
	return inv.console.Login(ctx, *email, *password)
}

func runLogout(ctx context.Context, inv *invocation) error {
	if err := inv.parse(); err != nil {
		return err
	}
	return inv.console.Logout(ctx)
}

func runWhoAmI(ctx context.Context, inv *invocation) error {
	if err := inv.parse(); err != nil {
		return err
	}
	return inv.console.WhoAmI(ctx)
}

// promptLine reads one line from in after printing label.
func promptLine(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", perrors.New(perrors.CodeUsage, "no input provided")
	}
	return strings.TrimRight(scanner.Text(), "\r"), nil
}

// promptPassword reads a password without echo when in is a terminal and
// falls back to promptLine otherwise.
func promptPassword(in io.Reader, out io.Writer, label string) (string, error) {
	f, ok := in.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return promptLine(in, out, label)
	}
	fmt.Fprint(out, label)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(secret), nil
}

// optionalString returns a pointer to the flag value when the flag was set.
func optionalString(fs *flag.FlagSet, name string, value string) *string {
	if !flagSet(fs, name) {
		return nil
	}
	return &value
}

func optionalBool(fs *flag.FlagSet, name string, value bool) *bool {
	if !flagSet(fs, name) {
		return nil
	}
	return &value
}

func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
