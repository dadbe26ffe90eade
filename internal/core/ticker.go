package core

import "time"

// Ticker is the scheduled-task handle a carousel owns while autoplay runs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory arms a new Ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

// NewTimeTicker is the TickerFactory backed by time.Ticker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }
