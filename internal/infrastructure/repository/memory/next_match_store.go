package memory

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchbook/internal/domain/nextmatch"
)

type NextMatchStore struct {
	mu    sync.RWMutex
	clock clockwork.Clock
	item  *nextmatch.NextMatch
}

func NewNextMatchStore(clock clockwork.Clock) *NextMatchStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &NextMatchStore{clock: clock}
}

func (s *NextMatchStore) Get(_ context.Context) (nextmatch.NextMatch, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.item == nil {
		return nextmatch.NextMatch{}, false, nil
	}
	return *s.item, true, nil
}

func (s *NextMatchStore) Set(_ context.Context, next nextmatch.NextMatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next.CreatedAt = s.clock.Now().UTC()
	s.item = &next
	return nil
}
