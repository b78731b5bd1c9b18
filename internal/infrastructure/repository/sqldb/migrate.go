package sqldb

import (
	"database/sql"
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/matchbook/db/migrations"
	_ "modernc.org/sqlite"
)

// NewMigrator opens a dedicated connection for schema changes. Closing the
// returned migrator closes that connection.
func NewMigrator(driver, dsn string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return nil, crerr.Wrapf(err, "load %s migrations", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s for migration", driver)
	}

	var target database.Driver
	switch driver {
	case DriverPostgres:
		target, err = migratepostgres.WithInstance(db, &migratepostgres.Config{})
	case DriverSQLite:
		target, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		err = crerr.Newf("unsupported migration driver %q", driver)
	}
	if err != nil {
		_ = db.Close()
		return nil, crerr.Wrap(err, "create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		_ = target.Close()
		return nil, crerr.Wrap(err, "create migrator")
	}
	return m, nil
}

// MigrateUp applies every pending migration. An up-to-date schema is not an error.
func MigrateUp(driver, dsn string) error {
	m, err := NewMigrator(driver, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return crerr.Wrap(err, "apply migrations")
	}
	return nil
}
