package carousel

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// manualClock hands out tickers that only fire when the test says so.
type manualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

type manualTicker struct {
	c        chan time.Time
	interval time.Duration

	mu      sync.Mutex
	stopped bool
}

func (m *manualClock) NewTicker(d time.Duration) Ticker {
	t := &manualTicker{c: make(chan time.Time), interval: d}
	m.mu.Lock()
	m.tickers = append(m.tickers, t)
	m.mu.Unlock()
	return t
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

func (t *manualTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

func (m *manualClock) active() []*manualTicker {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*manualTicker
	for _, t := range m.tickers {
		if !t.isStopped() {
			out = append(out, t)
		}
	}
	return out
}

func (m *manualClock) created() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

// Tick fires the live ticker and reports whether a scheduler loop took it.
func (m *manualClock) Tick() bool {
	live := m.active()
	if len(live) == 0 {
		return false
	}
	t := live[len(live)-1]
	select {
	case t.c <- time.Now():
		return true
	case <-time.After(200 * time.Millisecond):
		return false
	}
}

func newTestController(t *testing.T, clock Clock, n int, cfg Config) *Controller {
	t.Helper()
	c := New(WithClock(clock))
	t.Cleanup(c.Close)
	require.NoError(t, c.Initialize(testItems(n), cfg))
	return c
}

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Key: string(rune('a' + i)), Title: "card " + string(rune('A'+i))}
	}
	return items
}

func manualConfig(autoplay bool) Config {
	cfg := DefaultConfig()
	cfg.Autoplay = autoplay
	cfg.AutoplayInterval = time.Second
	return cfg
}

func waitForIndex(t *testing.T, c *Controller, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.Snapshot().CurrentIndex == want
	}, time.Second, time.Millisecond, "index never reached %d", want)
}
