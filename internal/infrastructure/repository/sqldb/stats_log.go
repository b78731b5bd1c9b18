package sqldb

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchbook/internal/domain/teamstats"
	qb "github.com/riskibarqy/matchbook/internal/platform/querybuilder"
)

// StatsLog never updates or deletes rows; the highest id is the current snapshot.
type StatsLog struct {
	db *sqlx.DB
}

func NewStatsLog(db *sqlx.DB) *StatsLog {
	return &StatsLog{db: db}
}

func (l *StatsLog) Append(ctx context.Context, s teamstats.Snapshot) (int64, error) {
	query, args, err := qb.InsertModel("stats", statsInsertModel{
		Wins:         s.Wins,
		Draws:        s.Draws,
		Losses:       s.Losses,
		Goals:        s.Goals,
		GoalsAgainst: s.GoalsAgainst,
	}, "RETURNING id")
	if err != nil {
		return 0, crerr.Wrap(err, "build append stats query")
	}

	var id int64
	if err := l.db.QueryRowxContext(ctx, l.db.Rebind(query), args...).Scan(&id); err != nil {
		return 0, crerr.Wrap(err, "append stats")
	}
	return id, nil
}

func (l *StatsLog) Latest(ctx context.Context) (teamstats.Snapshot, bool, error) {
	query, args, err := qb.Select("id", "wins", "draws", "losses", "goals", "goals_against", "created_at").
		From("stats").
		OrderBy("id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return teamstats.Snapshot{}, false, crerr.Wrap(err, "build latest stats query")
	}

	var row statsTableModel
	if err := l.db.GetContext(ctx, &row, l.db.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return teamstats.Snapshot{}, false, nil
		}
		return teamstats.Snapshot{}, false, crerr.Wrap(err, "latest stats")
	}

	return teamstats.Snapshot{
		ID:           row.ID,
		Wins:         row.Wins,
		Draws:        row.Draws,
		Losses:       row.Losses,
		Goals:        row.Goals,
		GoalsAgainst: row.GoalsAgainst,
		CreatedAt:    row.CreatedAt,
	}, true, nil
}
