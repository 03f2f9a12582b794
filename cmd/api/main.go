package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/event-dashboard/internal/api/http"
	"github.com/spec-kit/event-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/event-dashboard/internal/config"
	"github.com/spec-kit/event-dashboard/internal/events"
	"github.com/spec-kit/event-dashboard/internal/notify"
	"github.com/spec-kit/event-dashboard/internal/observability"
	"github.com/spec-kit/event-dashboard/internal/persistence"
	"github.com/spec-kit/event-dashboard/internal/repository"
	"github.com/spec-kit/event-dashboard/internal/service"
	"github.com/spec-kit/event-dashboard/internal/session"
	"github.com/spec-kit/event-dashboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
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

	if cfg.Postgres.RunMigrations && pg.PoolHandle() != nil {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	registry := buildRegistry(cfg, pg, logger)
	snapshots := buildSnapshotStore(cfg, redis, logger)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger))

	sessions := session.NewManager(cfg.Session, session.Dependencies{
		Registry:   registry,
		Snapshots:  snapshots,
		Dispatcher: dispatcher,
		Notifier:   notify.NewLogNotifier(logger),
		Logger:     logger,
	})
	if err := sessions.Restore(ctx); err != nil {
		logger.Fatal("session restore failed", zap.Error(err))
	}

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Sessions:    handlers.NewSessionHandler(sessions),
		Events:      handlers.NewEventsHandler(repository.NewEventStore()),
		Tasks:       handlers.NewTasksHandler(repository.NewTaskStore()),
		Users:       handlers.NewUsersHandler(registry),
		Departments: handlers.NewDepartmentsHandler(repository.NewDepartmentStore()),
		Plans:       handlers.NewPlansHandler(repository.NewPlanStore()),
		Manager:     sessions,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func buildRegistry(cfg *config.Config, pg *persistence.Postgres, logger *zap.Logger) repository.IdentityRegistry {
	if cfg.Registry.Backend == config.RegistryBackendPostgres && pg.PoolHandle() != nil {
		logger.Info("using postgres identity registry")
		return repository.NewPostgresRegistry(pg.PoolHandle(), cfg.Registry.BcryptCost)
	}
	logger.Info("using seeded in-memory identity registry")
	return repository.NewSeededRegistry()
}

func buildSnapshotStore(cfg *config.Config, redis *persistence.Redis, logger *zap.Logger) repository.SnapshotStore {
	if redis != nil && redis.Client != nil {
		if err := redis.Ping(context.Background()); err == nil {
			return repository.NewRedisSnapshotStore(redis.Client, cfg.Session.SnapshotKey)
		}
		logger.Warn("redis unreachable; session snapshots held in memory")
	}
	return repository.NewMemorySnapshotStore()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
