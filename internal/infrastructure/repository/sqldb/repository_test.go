package sqldb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchbook/internal/domain/match"
	"github.com/riskibarqy/matchbook/internal/domain/nextmatch"
	"github.com/riskibarqy/matchbook/internal/domain/teamstats"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "ledger.db") + "?_pragma=busy_timeout(5000)"
	if err := MigrateUp(DriverSQLite, dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// A second run must be a no-op.
	if err := MigrateUp(DriverSQLite, dsn); err != nil {
		t.Fatalf("migrate again: %v", err)
	}

	db, err := sqlx.Open(DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func TestMatchRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMatchRepository(newTestDB(t))

	empty, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no matches, got %d", len(empty))
	}

	firstID, err := repo.Create(ctx, match.Draft{Date: "2024-05-01", Opponent: "Rovers", Score: "2-1", Scorers: strPtr("Smith")})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	secondID, err := repo.Create(ctx, match.Draft{Date: "2024-05-08", Opponent: "City", Score: "0-0"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	sameDayID, err := repo.Create(ctx, match.Draft{Date: "2024-05-08", Opponent: "Athletic", Score: "1-1"})
	if err != nil {
		t.Fatalf("create third: %v", err)
	}
	if firstID >= secondID || secondID >= sameDayID {
		t.Fatalf("expected increasing ids, got %d, %d, %d", firstID, secondID, sameDayID)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(list))
	}
	if list[0].ID != sameDayID || list[1].ID != secondID || list[2].ID != firstID {
		t.Fatalf("unexpected order: %d, %d, %d", list[0].ID, list[1].ID, list[2].ID)
	}
	if list[2].Scorers == nil || *list[2].Scorers != "Smith" {
		t.Fatalf("unexpected scorers: %v", list[2].Scorers)
	}
	if list[1].Scorers != nil {
		t.Fatalf("expected NULL scorers, got %q", *list[1].Scorers)
	}
	if list[0].CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	found, err := repo.Update(ctx, firstID, match.Draft{Date: "2024-05-02", Opponent: "Rovers", Score: "3-1"})
	if err != nil || !found {
		t.Fatalf("update existing: found=%v err=%v", found, err)
	}
	found, err = repo.Update(ctx, 9999, match.Draft{Date: "2024-05-02", Opponent: "X", Score: "0-0"})
	if err != nil || found {
		t.Fatalf("update missing: found=%v err=%v", found, err)
	}

	list, _ = repo.List(ctx)
	updated := list[len(list)-1]
	if updated.ID != firstID || updated.Score != "3-1" || updated.Scorers != nil {
		t.Fatalf("update did not replace all fields: %+v", updated)
	}

	found, err = repo.Delete(ctx, secondID)
	if err != nil || !found {
		t.Fatalf("delete existing: found=%v err=%v", found, err)
	}
	found, err = repo.Delete(ctx, secondID)
	if err != nil || found {
		t.Fatalf("delete twice: found=%v err=%v", found, err)
	}

	list, _ = repo.List(ctx)
	if len(list) != 2 {
		t.Fatalf("expected 2 matches after delete, got %d", len(list))
	}
}

func TestNextMatchStore_Upsert(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := NewNextMatchStore(db)

	if _, ok, err := store.Get(ctx); err != nil || ok {
		t.Fatalf("expected empty store, ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, nextmatch.NextMatch{Date: "2024-06-01", Opponent: "United", Time: "15:00"}); err != nil {
		t.Fatalf("set first: %v", err)
	}
	if err := store.Set(ctx, nextmatch.NextMatch{Date: "2024-06-08", Opponent: "Town", Time: "19:45"}); err != nil {
		t.Fatalf("set second: %v", err)
	}

	got, ok, err := store.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Date != "2024-06-08" || got.Opponent != "Town" || got.Time != "19:45" {
		t.Fatalf("unexpected next match: %+v", got)
	}

	var rows int
	if err := db.Get(&rows, "SELECT COUNT(*) FROM next_match"); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected a single row, got %d", rows)
	}

	if _, err := db.Exec("INSERT INTO next_match (id, date, opponent, time) VALUES (2, 'x', 'y', 'z')"); err == nil {
		t.Fatalf("expected check constraint to reject id=2")
	}
}

func TestStatsLog_AppendAndLatest(t *testing.T) {
	ctx := context.Background()
	log := NewStatsLog(newTestDB(t))

	if _, ok, err := log.Latest(ctx); err != nil || ok {
		t.Fatalf("expected empty log, ok=%v err=%v", ok, err)
	}

	first, err := log.Append(ctx, teamstats.Snapshot{Wins: 1, Goals: 3, GoalsAgainst: 1})
	if err != nil {
		t.Fatalf("append first: %v", err)
	}
	second, err := log.Append(ctx, teamstats.Snapshot{Wins: 1, Goals: 3, GoalsAgainst: 1})
	if err != nil {
		t.Fatalf("append identical: %v", err)
	}
	if second <= first {
		t.Fatalf("expected distinct increasing ids, got %d then %d", first, second)
	}
	third, err := log.Append(ctx, teamstats.Snapshot{Wins: 2, Draws: 1, Losses: 1, Goals: 5, GoalsAgainst: 4})
	if err != nil {
		t.Fatalf("append third: %v", err)
	}

	got, ok, err := log.Latest(ctx)
	if err != nil || !ok {
		t.Fatalf("latest: ok=%v err=%v", ok, err)
	}
	if got.ID != third || got.Wins != 2 || got.Draws != 1 || got.Losses != 1 || got.Goals != 5 || got.GoalsAgainst != 4 {
		t.Fatalf("unexpected latest snapshot: %+v", got)
	}
	if time.Since(got.CreatedAt) > 24*time.Hour {
		t.Fatalf("unexpected created_at: %v", got.CreatedAt)
	}
}
