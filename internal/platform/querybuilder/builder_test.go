package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "date", "opponent").
		From("matches").
		Where(Eq("opponent", "Rovers"), IsNull("scorers")).
		OrderBy("date DESC", "id DESC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, date, opponent FROM matches WHERE opponent = ? AND scorers IS NULL ORDER BY date DESC, id DESC LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Rovers" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_InAndExpr(t *testing.T) {
	query, args, err := Select("id").
		From("stats").
		Where(In("id", []any{int64(1), int64(2)}), Expr("wins >= ?", 3)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM stats WHERE id IN (?, ?) AND wins >= ?"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInNeverMatches(t *testing.T) {
	query, args, err := Select("id").From("matches").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM matches WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("matches").
		Columns("date", "opponent").
		Values("2024-05-01", "Rovers").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO matches (date, opponent) VALUES (?, ?) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "2024-05-01" || args[1] != "Rovers" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_Upsert(t *testing.T) {
	query, args, err := InsertInto("next_match").
		Columns("id", "date", "opponent", "time").
		Values(1, "2024-06-01", "United", "15:00").
		OnConflict("id").
		DoUpdateExcluded("date", "opponent", "time").
		DoUpdateExpr("created_at", "CURRENT_TIMESTAMP").
		ToSQL()
	if err != nil {
		t.Fatalf("build upsert query: %v", err)
	}

	wantQuery := "INSERT INTO next_match (id, date, opponent, time) VALUES (?, ?, ?, ?) " +
		"ON CONFLICT (id) DO UPDATE SET date = excluded.date, opponent = excluded.opponent, " +
		"time = excluded.time, created_at = CURRENT_TIMESTAMP"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("matches").Columns("date", "opponent").Values("2024-05-01").ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("matches").
		Set("opponent", "City").
		SetExpr("score", "?", "3-3").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE matches SET opponent = ?, score = ? WHERE id = ?"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "City" || args[1] != "3-3" || args[2] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("matches").Where(Eq("id", int64(3))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM matches WHERE id = ?" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("matches").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Date     string  `db:"date"`
		Opponent string  `db:"opponent"`
		Scorers  *string `db:"scorers"`
		Ignored  string  `db:"-"`
		internal string
	}

	query, args, err := InsertModel("matches", row{Date: "2024-05-01", Opponent: "Rovers", internal: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert from model: %v", err)
	}

	wantQuery := "INSERT INTO matches (date, opponent, scorers) VALUES (?, ?, ?) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateModel(t *testing.T) {
	type row struct {
		Date  string `db:"date"`
		Score string `db:"score"`
	}

	query, args, err := UpdateModel("matches", &row{Date: "2024-05-02", Score: "0-0"}, Eq("id", int64(9)))
	if err != nil {
		t.Fatalf("build update from model: %v", err)
	}
	if query != "UPDATE matches SET date = ?, score = ? WHERE id = ?" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 3 || args[2] != int64(9) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := UpdateModel("matches", (*row)(nil)); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
