package sqldb

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchbook/internal/domain/match"
	qb "github.com/riskibarqy/matchbook/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("id", "date", "opponent", "score", "scorers", "created_at").
		From("matches").
		OrderBy("date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, crerr.Wrap(err, "list matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) Create(ctx context.Context, draft match.Draft) (int64, error) {
	query, args, err := qb.InsertModel("matches", toMatchWriteModel(draft), "RETURNING id")
	if err != nil {
		return 0, crerr.Wrap(err, "build create match query")
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&id); err != nil {
		return 0, crerr.Wrap(err, "create match")
	}
	return id, nil
}

// Update reports false when no row has the given id.
func (r *MatchRepository) Update(ctx context.Context, id int64, draft match.Draft) (bool, error) {
	query, args, err := qb.UpdateModel("matches", toMatchWriteModel(draft), qb.Eq("id", id))
	if err != nil {
		return false, crerr.Wrap(err, "build update match query")
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return false, crerr.Wrapf(err, "update match id=%d", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, crerr.Wrapf(err, "update match id=%d rows affected", id)
	}
	return affected > 0, nil
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, crerr.Wrap(err, "build delete match query")
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return false, crerr.Wrapf(err, "delete match id=%d", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, crerr.Wrapf(err, "delete match id=%d rows affected", id)
	}
	return affected > 0, nil
}

func toMatchWriteModel(d match.Draft) matchWriteModel {
	return matchWriteModel{
		Date:     d.Date,
		Opponent: d.Opponent,
		Score:    d.Score,
		Scorers:  d.Scorers,
	}
}

func (m matchTableModel) toDomain() match.Match {
	out := match.Match{
		ID:        m.ID,
		Date:      m.Date,
		Opponent:  m.Opponent,
		Score:     m.Score,
		CreatedAt: m.CreatedAt,
	}
	if m.Scorers.Valid {
		scorers := m.Scorers.String
		out.Scorers = &scorers
	}
	return out
}
