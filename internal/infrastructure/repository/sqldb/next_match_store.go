package sqldb

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchbook/internal/domain/nextmatch"
	qb "github.com/riskibarqy/matchbook/internal/platform/querybuilder"
)

// nextMatchRowID is the only id the next_match table accepts.
const nextMatchRowID = 1

type NextMatchStore struct {
	db *sqlx.DB
}

func NewNextMatchStore(db *sqlx.DB) *NextMatchStore {
	return &NextMatchStore{db: db}
}

func (s *NextMatchStore) Get(ctx context.Context) (nextmatch.NextMatch, bool, error) {
	query, args, err := qb.Select("date", "opponent", "time", "created_at").
		From("next_match").
		Where(qb.Eq("id", nextMatchRowID)).
		ToSQL()
	if err != nil {
		return nextmatch.NextMatch{}, false, crerr.Wrap(err, "build get next match query")
	}

	var row nextMatchTableModel
	if err := s.db.GetContext(ctx, &row, s.db.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return nextmatch.NextMatch{}, false, nil
		}
		return nextmatch.NextMatch{}, false, crerr.Wrap(err, "get next match")
	}

	return nextmatch.NextMatch{
		Date:      row.Date,
		Opponent:  row.Opponent,
		Time:      row.Time,
		CreatedAt: row.CreatedAt,
	}, true, nil
}

// Set replaces the single next-match row atomically.
func (s *NextMatchStore) Set(ctx context.Context, next nextmatch.NextMatch) error {
	query, args, err := qb.InsertInto("next_match").
		Columns("id", "date", "opponent", "time").
		Values(nextMatchRowID, next.Date, next.Opponent, next.Time).
		OnConflict("id").
		DoUpdateExcluded("date", "opponent", "time").
		DoUpdateExpr("created_at", "CURRENT_TIMESTAMP").
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build set next match query")
	}

	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...); err != nil {
		return crerr.Wrap(err, "set next match")
	}
	return nil
}
