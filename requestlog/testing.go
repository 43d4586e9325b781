package requestlog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
)

// TestCollector gathers values from a subscription for use in tests.
type TestCollector[T any] struct {
	t       testing.TB
	items   []T
	cancel  context.CancelFunc
	timeout time.Duration
	mu      sync.Mutex
}

// Collect subscribes and collects values in the background until Wait or Stop is called.
func Collect[T any](t testing.TB, subscribe func(context.Context) <-chan T) *TestCollector[T] {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	ch := subscribe(ctx)

	c := &TestCollector[T]{
		t:       t,
		cancel:  cancel,
		timeout: 5 * time.Second,
	}

	go func() {
		for item := range ch {
			c.mu.Lock()
			c.items = append(c.items, item)
			c.mu.Unlock()
		}
	}()

	return c
}

// WithTimeout changes how long Wait blocks before failing the test.
func (c *TestCollector[T]) WithTimeout(timeout time.Duration) *TestCollector[T] {
	c.timeout = timeout
	return c
}

// Wait blocks until at least n values arrived and returns them.
// It fails the test on timeout.
func (c *TestCollector[T]) Wait(n int) []T {
	c.t.Helper()
	return c.WaitFor(n, func(T) bool { return true })
}

// WaitFor blocks until at least n of the collected values match and returns
// the matching values. It fails the test on timeout.
func (c *TestCollector[T]) WaitFor(n int, match func(T) bool) []T {
	c.t.Helper()
	defer c.cancel()

	matching := func() []T {
		return lo.Filter(c.snapshot(), func(item T, _ int) bool { return match(item) })
	}

	deadline := time.Now().Add(c.timeout)
	for time.Now().Before(deadline) {
		if items := matching(); len(items) >= n {
			return items
		}
		time.Sleep(5 * time.Millisecond)
	}

	c.t.Fatalf("timeout waiting for %d items, got %d", n, len(matching()))
	return nil
}

// Stop ends collection and returns what arrived so far.
func (c *TestCollector[T]) Stop() []T {
	c.cancel()
	return c.snapshot()
}

func (c *TestCollector[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}
