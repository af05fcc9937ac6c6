package console

import (
	"bufio"
	"fmt"

	perrors "github.com/curkin/adminconsole/internal/platform/errors"
	"github.com/curkin/adminconsole/internal/services/admin/i18n"
)

// ErrDeclined is returned when a destructive action is not confirmed.
var ErrDeclined = perrors.New(perrors.CodeConfirmationDeclined, "action cancelled")

// confirm asks before a destructive action. -yes skips the prompt; a
// non-interactive input without -yes refuses.
func (c *Console) confirm(action string) error {
	if c.assumeYes {
		return nil
	}
	if !c.interactive {
		return perrors.New(perrors.CodeConfirmationDeclined,
			fmt.Sprintf("refusing to %s without confirmation on a non-interactive input", action))
	}
	fmt.Fprint(c.errOut, c.printer.Sprintf("Are you sure you want to %s? [y/N] ", action))
	scanner := bufio.NewScanner(c.in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read confirmation: %w", err)
		}
		return ErrDeclined
	}
	if !i18n.Confirms(c.tag, scanner.Text()) {
		return ErrDeclined
	}
	return nil
}
