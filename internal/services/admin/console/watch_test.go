package console

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatchRefreshesUntilContextEnds(t *testing.T) {
	b := newBackend(t)
	h := newHarness(t, b)
	h.console.refresh = 10 * time.Millisecond

	var renders atomic.Int32
	ctx, cancel := context.WithTimeout(context.Background(), 75*time.Millisecond)
	defer cancel()

	err := h.console.watch(ctx, func(context.Context) error {
		renders.Add(1)
		return nil
	}, false)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if n := renders.Load(); n < 2 {
		t.Fatalf("expected at least two renders, got %d", n)
	}
}

func TestWatchKeepsGoingAfterPageErrors(t *testing.T) {
	b := newBackend(t)
	h := newHarness(t, b)
	h.console.refresh = 5 * time.Millisecond

	var renders atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := h.console.watch(ctx, func(context.Context) error {
		if renders.Add(1) >= 3 {
			cancel()
		}
		return errors.New("backend down")
	}, false)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if n := renders.Load(); n < 3 {
		t.Fatalf("expected three renders, got %d", n)
	}
}
