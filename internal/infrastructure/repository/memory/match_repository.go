package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchbook/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	clock  clockwork.Clock
	nextID int64
	items  map[int64]match.Match
}

func NewMatchRepository(clock clockwork.Clock) *MatchRepository {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MatchRepository{
		clock:  clock,
		nextID: 1,
		items:  make(map[int64]match.Match),
	}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, cloneMatch(m))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) Create(_ context.Context, draft match.Draft) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.items[id] = cloneMatch(match.Match{
		ID:        id,
		Date:      draft.Date,
		Opponent:  draft.Opponent,
		Score:     draft.Score,
		Scorers:   draft.Scorers,
		CreatedAt: r.clock.Now().UTC(),
	})
	return id, nil
}

func (r *MatchRepository) Update(_ context.Context, id int64, draft match.Draft) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok {
		return false, nil
	}
	existing.Date = draft.Date
	existing.Opponent = draft.Opponent
	existing.Score = draft.Score
	existing.Scorers = draft.Scorers
	r.items[id] = cloneMatch(existing)
	return true, nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func cloneMatch(m match.Match) match.Match {
	if m.Scorers != nil {
		scorers := *m.Scorers
		m.Scorers = &scorers
	}
	return m
}
