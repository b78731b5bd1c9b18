package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchbook/internal/config"
	"github.com/riskibarqy/matchbook/internal/domain/match"
	"github.com/riskibarqy/matchbook/internal/domain/nextmatch"
	"github.com/riskibarqy/matchbook/internal/domain/teamstats"
	"github.com/riskibarqy/matchbook/internal/infrastructure/account/sharedsecret"
	"github.com/riskibarqy/matchbook/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchbook/internal/infrastructure/repository/sqldb"
	"github.com/riskibarqy/matchbook/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchbook/internal/platform/logging"
	"github.com/riskibarqy/matchbook/internal/usecase"
)

type storage struct {
	matches   match.Repository
	nextMatch nextmatch.Store
	stats     teamstats.Log
	closer    io.Closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage, error) {
	if cfg.DBDriver == config.DBDriverMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		clock := clockwork.NewRealClock()
		return storage{
			matches:   memory.NewMatchRepository(clock),
			nextMatch: memory.NewNextMatchStore(clock),
			stats:     memory.NewStatsLog(clock),
			closer:    nopCloser{},
		}, nil
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return storage{}, err
	}
	logger.Info("database ready", "driver", cfg.DBDriver, "db_name", dbNameFromURL(cfg.DBURL), "auto_migrate", cfg.DBAutoMigrate)

	return storage{
		matches:   sqldb.NewMatchRepository(db),
		nextMatch: sqldb.NewNextMatchStore(db),
		stats:     sqldb.NewStatsLog(db),
		closer:    db,
	}, nil
}

// NewHTTPServer wires storage, services and routes. The returned closer
// releases the storage handle and must be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, io.Closer, error) {
	if logger == nil {
		logger = logging.Default()
	}

	authorizer, err := sharedsecret.New(cfg.AdminPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("build authorizer: %w", err)
	}

	store, err := newStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	handler := httpapi.NewHandler(
		usecase.NewAuthService(authorizer),
		usecase.NewMatchService(store.matches),
		usecase.NewNextMatchService(store.nextMatch),
		usecase.NewStatsService(store.stats),
		logger,
	)
	router := httpapi.NewRouter(handler, authorizer, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = store.closer.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, store.closer, nil
}
