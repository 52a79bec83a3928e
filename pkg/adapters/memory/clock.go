package memory

import (
	"sync"
	"time"

	"github.com/m-mizutani/komainu/pkg/domain/interfaces"
)

// Clock is a manual clock for driving polling flows deterministically.
// Tests move time with Advance and fire poll cycles with Tick.
type Clock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*Ticker
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward without delivering any tick
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *Clock) NewTicker(d time.Duration) interfaces.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &Ticker{ch: make(chan time.Time, 1)}
	c.tickers = append(c.tickers, t)
	return t
}

// Tick delivers one tick to every active ticker. Like time.Ticker, a tick
// is dropped when the receiver has not consumed the previous one.
func (c *Clock) Tick() {
	c.mu.Lock()
	now := c.now
	tickers := append([]*Ticker{}, c.tickers...)
	c.mu.Unlock()

	for _, t := range tickers {
		t.deliver(now)
	}
}

// TickerCount returns how many tickers were created
func (c *Clock) TickerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

type Ticker struct {
	mu      sync.Mutex
	ch      chan time.Time
	stopped bool
}

func (t *Ticker) Chan() <-chan time.Time {
	return t.ch
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

// Stopped reports whether the ticker was released
func (t *Ticker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

func (t *Ticker) deliver(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	select {
	case t.ch <- now:
	default:
	}
}
