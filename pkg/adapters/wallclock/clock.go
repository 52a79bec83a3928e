package wallclock

import (
	"time"

	"github.com/m-mizutani/komainu/pkg/domain/interfaces"
)

// Clock is the real-time implementation of interfaces.Clock
type Clock struct{}

func New() *Clock {
	return &Clock{}
}

func (c *Clock) Now() time.Time {
	return time.Now()
}

func (c *Clock) NewTicker(d time.Duration) interfaces.Ticker {
	return &ticker{inner: time.NewTicker(d)}
}

type ticker struct {
	inner *time.Ticker
}

func (t *ticker) Chan() <-chan time.Time {
	return t.inner.C
}

func (t *ticker) Stop() {
	t.inner.Stop()
}
