package memory

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchbook/internal/domain/teamstats"
)

type StatsLog struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	entries []teamstats.Snapshot
}

func NewStatsLog(clock clockwork.Clock) *StatsLog {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &StatsLog{clock: clock}
}

func (l *StatsLog) Append(_ context.Context, s teamstats.Snapshot) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.ID = int64(len(l.entries)) + 1
	s.CreatedAt = l.clock.Now().UTC()
	l.entries = append(l.entries, s)
	return s.ID, nil
}

func (l *StatsLog) Latest(_ context.Context) (teamstats.Snapshot, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.entries) == 0 {
		return teamstats.Snapshot{}, false, nil
	}
	return l.entries[len(l.entries)-1], true, nil
}
