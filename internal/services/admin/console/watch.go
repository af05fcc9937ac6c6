package console

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"time"

	"github.com/oklog/run"
)

// Watch renders page immediately and again every refresh interval until ctx
// ends or the process is interrupted. Render failures are printed and the
// loop keeps going, like a page that shows an error banner and retries on
// its next tick.
func (c *Console) Watch(ctx context.Context, page func(context.Context) error) error {
	return c.watch(ctx, page, true)
}

func (c *Console) watch(ctx context.Context, page func(context.Context) error, withSignals bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g run.Group
	g.Add(func() error {
		c.status("Refreshing every %s, press Ctrl+C to stop.", c.refresh)
		return c.refreshLoop(ctx, page)
	}, func(error) {
		cancel()
	})
	if withSignals {
		g.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))
	}

	err := g.Run()
	var sigErr run.SignalError
	if errors.As(err, &sigErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (c *Console) refreshLoop(ctx context.Context, page func(context.Context) error) error {
	ticker := time.NewTicker(c.refresh)
	defer ticker.Stop()
	for {
		// Pages print their own failures.
		_ = page(ctx)
		if !c.structured() {
			fmt.Fprintln(c.out)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
