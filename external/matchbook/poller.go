package matchbook

import (
	"context"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/panjf2000/ants/v2"
)

const DefaultPollInterval = 5 * time.Second

type StatsPollerConfig struct {
	Interval time.Duration
	Clock    clockwork.Clock
	// OnError receives every failed poll. Nil drops errors.
	OnError func(error)
}

// StatsPoller refreshes a session's stats on a fixed interval. Each tick runs
// on its own worker; slow polls may overlap and are not cancelled.
type StatsPoller struct {
	session  *Session
	interval time.Duration
	clock    clockwork.Clock
	onError  func(error)
}

func NewStatsPoller(session *Session, cfg StatsPollerConfig) *StatsPoller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	onError := cfg.OnError
	if onError == nil {
		onError = func(error) {}
	}
	return &StatsPoller{session: session, interval: interval, clock: clock, onError: onError}
}

// Run polls until ctx is done and then waits for in-flight polls.
func (p *StatsPoller) Run(ctx context.Context) error {
	workers, err := ants.NewPool(-1)
	if err != nil {
		return crerr.Wrap(err, "create poll worker pool")
	}
	defer workers.Release()

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	var inFlight sync.WaitGroup
	defer inFlight.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			inFlight.Add(1)
			if err := workers.Submit(func() {
				defer inFlight.Done()
				if err := p.session.RefreshStats(ctx); err != nil && ctx.Err() == nil {
					p.onError(err)
				}
			}); err != nil {
				inFlight.Done()
				p.onError(crerr.Wrap(err, "submit stats poll"))
			}
		}
	}
}
