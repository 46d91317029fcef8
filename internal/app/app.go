package app

import (
	"fmt"
	"net/http"

	"github.com/peladahub/league-stats/internal/config"
	"github.com/peladahub/league-stats/internal/domain/participant"
	"github.com/peladahub/league-stats/internal/domain/stats"
	"github.com/peladahub/league-stats/internal/infrastructure/repository/memory"
	"github.com/peladahub/league-stats/internal/infrastructure/repository/postgres"
	"github.com/peladahub/league-stats/internal/interfaces/httpapi"
	"github.com/peladahub/league-stats/internal/platform/cache"
	"github.com/peladahub/league-stats/internal/platform/logging"
	"github.com/peladahub/league-stats/internal/usecase"
)

// NewHTTPServer wires repositories, services and the router. The returned
// cleanup closes the database handle and is safe to call on the memory setup.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		participantRepo participant.Repository
		snapshotRepo    stats.SnapshotRepository
		eventRepo       stats.EventRepository
		cleanup         = func() error { return nil }
	)

	if cfg.DBURL == "" {
		logger.Info("db url not set, using in-memory seed repositories")
		statsRepo := memory.SeedStats()
		participantRepo = memory.NewParticipantRepository(memory.SeedParticipants())
		snapshotRepo = statsRepo
		eventRepo = statsRepo
	} else {
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		participantRepo = postgres.NewParticipantRepository(db)
		snapshotRepo = postgres.NewSnapshotRepository(db)
		eventRepo = postgres.NewStatsRepository(db)
		cleanup = db.Close
	}

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	statsSvc := usecase.NewStatsService(participantRepo, snapshotRepo, eventRepo, cacheStore, logger)
	participantSvc := usecase.NewParticipantService(participantRepo)
	warmupSvc := usecase.NewWarmupService(participantRepo, statsSvc, logger)

	handler := httpapi.NewHandler(participantSvc, statsSvc, warmupSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}
