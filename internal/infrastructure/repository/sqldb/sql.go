// Package sqldb stores the ledger in PostgreSQL or SQLite through sqlx.
// Queries are built with "?" placeholders and rebound per driver.
package sqldb

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func init() {
	// modernc registers as "sqlite", a name sqlx may not map to "?" binds.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}
