package interfaces

import "time"

// Ticker delivers ticks on a channel until stopped
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// Clock abstracts wall time and ticker creation so that polling flows can
// be driven by a manual clock in tests
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}
