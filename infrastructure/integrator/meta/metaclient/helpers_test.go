package metaclient

import (
	"context"
	"net/http/httptest"
	"sync"
	"time"
)

// fakeClock avança o tempo a cada Sleep e guarda as esperas pedidas
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 18, 3, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	c.sleeps = append(c.sleeps, d)
	return nil
}

func (c *fakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

func noJitter() time.Duration {
	return 0
}

func newTestExecutor(srv *httptest.Server, clock Clock, maxRetries int) *Executor {
	return NewExecutor(
		srv.Client(),
		NewClassifier(DefaultClassifierConfig(), nil),
		nil,
		ExecutorConfig{MaxRetries: maxRetries},
		WithClock(clock),
		WithJitter(noJitter),
	)
}
