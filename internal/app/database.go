package app

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchbook/internal/config"
	"github.com/riskibarqy/matchbook/internal/infrastructure/repository/sqldb"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

// openDatabase connects through otelsqlx so every query becomes a span, applies
// pending migrations when enabled, and fails fast if the database is unreachable.
func openDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := cfg.DBURL
	if cfg.DBDriver == config.DBDriverPostgres {
		dsn = normalizeDBURL(dsn, cfg.DBDisablePreparedBinary)
	}

	if cfg.DBAutoMigrate {
		if err := sqldb.MigrateUp(cfg.DBDriver, dsn); err != nil {
			return nil, crerr.Wrap(err, "auto migrate")
		}
	}

	db, err := otelsqlx.Open(cfg.DBDriver, dsn,
		otelsql.WithDBSystem(dbSystem(cfg.DBDriver)),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s", cfg.DBDriver)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, crerr.Wrapf(err, "ping %s", cfg.DBDriver)
	}

	return db, nil
}

func dbSystem(driver string) string {
	if driver == config.DBDriverPostgres {
		return "postgresql"
	}
	return driver
}
