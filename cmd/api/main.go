package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/kanban-board/internal/api/http"
	"github.com/spec-kit/kanban-board/internal/api/http/handlers"
	"github.com/spec-kit/kanban-board/internal/auth"
	"github.com/spec-kit/kanban-board/internal/config"
	"github.com/spec-kit/kanban-board/internal/events"
	"github.com/spec-kit/kanban-board/internal/observability"
	"github.com/spec-kit/kanban-board/internal/persistence"
	"github.com/spec-kit/kanban-board/internal/repository"
	"github.com/spec-kit/kanban-board/internal/service"
	"github.com/spec-kit/kanban-board/internal/source"
	"github.com/spec-kit/kanban-board/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Configured() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	upstream := newUpstream(cfg, pg, logger)
	snapshots := source.NewCachedSource(upstream, repository.NewSnapshotCache(redis.Client), cfg.Source.CacheTTL(), logger)

	engine, err := service.NewEngine(cfg.Board)
	if err != nil {
		logger.Fatal("invalid board config", zap.Error(err))
	}
	defaults, err := service.DefaultSelection(cfg.Board)
	if err != nil {
		logger.Fatal("invalid board config", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	service.NewNotificationService(dispatcher, logger, cfg.Notification).RegisterHandlers()

	preferenceService := service.NewPreferenceService(repository.NewPreferenceRepository(redis.Client), defaults, dispatcher, logger)
	boardService := service.NewBoardService(engine, defaults, service.BoardDependencies{
		Loader:      snapshots,
		Refresher:   snapshots,
		Preferences: preferenceService,
		Dispatcher:  dispatcher,
		Metrics:     metrics,
		Logger:      logger,
	})
	authService := service.NewAuthService(cfg.Auth)
	if cfg.Auth.APIKeyHash == "" {
		logger.Warn("AUTH_API_KEY_HASH not set; token issuance disabled")
	}

	dependencies := map[string]handlers.Pinger{"redis": redis}
	if pg.Configured() {
		dependencies["postgres"] = pg
	}

	app := httptransport.NewApp(httptransport.AppConfig{
		Name:           cfg.App.Name,
		Logger:         logger,
		Metrics:        metrics,
		RequestTimeout: cfg.App.RequestTimeout(),
	}, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Board:          handlers.NewBoardHandler(boardService, preferenceService),
		Snapshot:       handlers.NewSnapshotHandler(boardService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager()),
	})

	worker.Start(ctx, worker.NewRefreshWorker(boardService, cfg.Source.RefreshInterval(), logger))

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func newUpstream(cfg *config.Config, pg *persistence.Postgres, logger *zap.Logger) source.Loader {
	if cfg.Source.Kind == config.SourcePostgres {
		if !pg.Configured() {
			logger.Fatal("SOURCE_KIND=postgres requires POSTGRES_DSN")
		}
		pool := pg.PoolHandle()
		return source.NewPostgresSource(repository.NewTicketRepository(pool), repository.NewUserRepository(pool))
	}
	logger.Info("using http snapshot source", zap.String("url", cfg.Source.URL))
	return source.NewHTTPSource(cfg.Source.URL, cfg.Source.Timeout())
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
