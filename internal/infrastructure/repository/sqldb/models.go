package sqldb

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID        int64          `db:"id"`
	Date      string         `db:"date"`
	Opponent  string         `db:"opponent"`
	Score     string         `db:"score"`
	Scorers   sql.NullString `db:"scorers"`
	CreatedAt time.Time      `db:"created_at"`
}

type matchWriteModel struct {
	Date     string  `db:"date"`
	Opponent string  `db:"opponent"`
	Score    string  `db:"score"`
	Scorers  *string `db:"scorers"`
}

type nextMatchTableModel struct {
	Date      string    `db:"date"`
	Opponent  string    `db:"opponent"`
	Time      string    `db:"time"`
	CreatedAt time.Time `db:"created_at"`
}

type statsTableModel struct {
	ID           int64     `db:"id"`
	Wins         int64     `db:"wins"`
	Draws        int64     `db:"draws"`
	Losses       int64     `db:"losses"`
	Goals        int64     `db:"goals"`
	GoalsAgainst int64     `db:"goals_against"`
	CreatedAt    time.Time `db:"created_at"`
}

type statsInsertModel struct {
	Wins         int64 `db:"wins"`
	Draws        int64 `db:"draws"`
	Losses       int64 `db:"losses"`
	Goals        int64 `db:"goals"`
	GoalsAgainst int64 `db:"goals_against"`
}
