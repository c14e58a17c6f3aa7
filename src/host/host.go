// Package host wires the app to the outside world: it plays the role of the
// device timer and runs the frontends which paint the pads and deliver the
// button events.
package host

import (
	"context"
	"errors"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

//DefTickPeriod is the period of the device timer
const DefTickPeriod = time.Millisecond

//Ticker is the receiver of the raw timer ticks
type Ticker interface {
	OnTimerTick()
}

//Frontend is the blocking part of a backend, e.g. the terminal UI main loop
//Run returns when the user quits or ctx is cancelled
type Frontend interface {
	Run(ctx context.Context) error
	Close() error
}

//Clock calls the ticker periodically, like the hardware timer interrupt
type Clock struct {
	t      Ticker
	period time.Duration
}

//NewClock creates the clock, non positive period means the default one
func NewClock(t Ticker, period time.Duration) *Clock {
	if period <= 0 {
		period = DefTickPeriod
	}
	return &Clock{t: t, period: period}
}

//Period returns the tick period
func (c *Clock) Period() time.Duration {
	return c.period
}

//Run ticks until ctx is cancelled
func (c *Clock) Run(ctx context.Context) error {
	tk := time.NewTicker(c.period)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tk.C:
			c.t.OnTimerTick()
		}
	}
}

//errStopped cancels the group once a frontend has finished
var errStopped = errors.New("frontend stopped")

//Run starts the clock and all frontends and waits until one of the frontends returns or ctx is done
//the frontends are closed before returning
func Run(ctx context.Context, clock *Clock, frontends ...Frontend) (err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return clock.Run(gctx)
	})
	for _, f := range frontends {
		g.Go(func() error {
			if err := f.Run(gctx); err != nil {
				return err
			}
			return errStopped
		})
	}
	if err = g.Wait(); errors.Is(err, errStopped) {
		err = nil
	}
	for _, f := range frontends {
		err = multierr.Append(err, f.Close())
	}
	return err
}
