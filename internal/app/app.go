package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/scoreboard/internal/config"
	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scoreboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/scoreboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/usecase"
)

// NewHTTPServer wires repository, service and handler once at startup. The
// returned close func releases the storage connection pool.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	playerRepo, closeStore, err := newPlayerRepository(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	playerSvc := usecase.NewPlayerService(playerRepo, logger)
	handler := httpapi.NewHandler(playerSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeStore, nil
}

func newPlayerRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (player.Repository, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Warn("using in-memory player storage", "reason", "STORAGE_DRIVER=memory")
		return memory.NewPlayerRepository(nil), func() error { return nil }, nil
	case config.StorageDriverPostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("postgres connected",
			"db_name", dbNameFromURL(cfg.DBURL),
			"max_open_conns", cfg.DBMaxOpenConns,
		)
		return postgres.NewPlayerRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
