package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchbook/internal/domain/match"
	"github.com/riskibarqy/matchbook/internal/domain/nextmatch"
	"github.com/riskibarqy/matchbook/internal/domain/teamstats"
)

func TestMatchRepository_OrderAndMutation(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	repo := NewMatchRepository(clock)

	scorers := "Smith"
	a, _ := repo.Create(ctx, match.Draft{Date: "2024-05-01", Opponent: "Rovers", Score: "2-1", Scorers: &scorers})
	b, _ := repo.Create(ctx, match.Draft{Date: "2024-05-08", Opponent: "City", Score: "0-0"})
	c, _ := repo.Create(ctx, match.Draft{Date: "2024-05-08", Opponent: "Athletic", Score: "1-1"})

	scorers = "mutated"

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].ID != c || list[1].ID != b || list[2].ID != a {
		t.Fatalf("unexpected order: %+v", list)
	}
	if *list[2].Scorers != "Smith" {
		t.Fatalf("stored scorers must not alias caller memory, got %q", *list[2].Scorers)
	}
	if !list[0].CreatedAt.Equal(clock.Now()) {
		t.Fatalf("unexpected created_at: %v", list[0].CreatedAt)
	}

	if found, _ := repo.Update(ctx, 42, match.Draft{}); found {
		t.Fatalf("expected update of missing id to report not found")
	}
	if found, _ := repo.Delete(ctx, b); !found {
		t.Fatalf("expected delete to find id %d", b)
	}
	if found, _ := repo.Delete(ctx, b); found {
		t.Fatalf("expected second delete to miss")
	}

	d, _ := repo.Create(ctx, match.Draft{Date: "2024-01-01", Opponent: "Town", Score: "0-1"})
	if d <= c {
		t.Fatalf("ids must never be reused: got %d after %d", d, c)
	}
}

func TestNextMatchStore_ReplacesSingleRecord(t *testing.T) {
	ctx := context.Background()
	store := NewNextMatchStore(clockwork.NewFakeClock())

	if _, ok, _ := store.Get(ctx); ok {
		t.Fatalf("expected empty store")
	}
	_ = store.Set(ctx, nextmatch.NextMatch{Date: "2024-06-01", Opponent: "United", Time: "15:00"})
	_ = store.Set(ctx, nextmatch.NextMatch{Date: "2024-06-08", Opponent: "Town", Time: "19:45"})

	got, ok, err := store.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Opponent != "Town" || got.CreatedAt.IsZero() {
		t.Fatalf("unexpected next match: %+v", got)
	}
}

func TestStatsLog_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	log := NewStatsLog(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			if _, err := log.Append(ctx, teamstats.Snapshot{Wins: n}); err != nil {
				t.Errorf("append: %v", err)
			}
		}(int64(i))
	}
	wg.Wait()

	latest, ok, err := log.Latest(ctx)
	if err != nil || !ok {
		t.Fatalf("latest: ok=%v err=%v", ok, err)
	}
	if latest.ID != 50 {
		t.Fatalf("expected 50 distinct ids, latest=%d", latest.ID)
	}
}
