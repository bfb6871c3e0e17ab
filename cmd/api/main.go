package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/ghuser/wherearethenoodles/docs/swagger"
	"github.com/ghuser/wherearethenoodles/pkg/app"
	"github.com/ghuser/wherearethenoodles/pkg/cache"
	"github.com/ghuser/wherearethenoodles/pkg/config"
	"github.com/ghuser/wherearethenoodles/pkg/database"
	"github.com/ghuser/wherearethenoodles/pkg/events"
	"github.com/ghuser/wherearethenoodles/pkg/httpx"
	"github.com/ghuser/wherearethenoodles/pkg/logger"
	"github.com/ghuser/wherearethenoodles/pkg/session"
	"github.com/ghuser/wherearethenoodles/pkg/telemetry"
	inventoryApi "github.com/ghuser/wherearethenoodles/services/inventory/application/api"
	inventorySvcs "github.com/ghuser/wherearethenoodles/services/inventory/application/services"
	"github.com/ghuser/wherearethenoodles/services/inventory/application/subscribers"
	"github.com/ghuser/wherearethenoodles/services/inventory/infrastructure/persistence"
)

// @title					wherearethenoodles API
// @version				1.0
// @description			Household food inventory: cupboard, fridge and freezer.
// @contact.name			API Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	var pool *database.Database
	if cfg.UsesPostgres() {
		pool, err = database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer pool.Close()
		log.Info("database pool connected")
	}

	var redisClient *cache.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
	}

	storage, err := persistence.OpenSlot(ctx, cfg, persistence.Shared{DB: pool, Redis: redisClient})
	if err != nil {
		log.Error("failed to open storage slot", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer storage.Close() //nolint:errcheck
	log.Info("storage slot opened", "driver", cfg.StorageDriver, "key", cfg.StorageKey)

	eventBus, err := openEventBus(ctx, cfg, pool, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	if eventBus != nil {
		defer eventBus.Close() //nolint:errcheck
	}

	pageCache, err := cache.NewPageCache(cache.DefaultPageCacheSize)
	if err != nil {
		log.Error("failed to create page cache", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	sessionStore := session.NewStore(cfg, redisClient)
	log.Info("session store initialized", "backend", sessionBackend(redisClient))

	appConfig := &app.Application{
		Config:       cfg,
		Logger:       log,
		Storage:      storage,
		Db:           pool,
		EventBus:     eventBus,
		Redis:        redisClient,
		SessionStore: sessionStore,
		PageCache:    pageCache,
	}

	svcs, err := inventorySvcs.New(ctx, appConfig)
	if err != nil {
		log.Error("failed to load inventory", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	// In-memory events never leave the process, so the API consumes them itself.
	if eventBus != nil && eventBus.Transport() == events.TransportMemory {
		if err := subscribers.Register(ctx, eventBus, log, cfg.ExpiryWarningDays); err != nil {
			log.Error("failed to register subscribers", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		telemetry.HTTPMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(healthChecks(storage, redisClient, eventBus)))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if err := inventoryApi.PageRoutes(r, appConfig, svcs); err != nil {
		log.Error("failed to register page routes", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig, svcs)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
func registerRoutes(r chi.Router, a *app.Application, svcs *inventorySvcs.Services) {
	inventoryApi.InventoryRoutes(r, a, svcs)
}

// openEventBus builds the bus selected by EVENTS_DRIVER. It returns nil for
// "none". The SQL bus publishes through the forwarder outbox.
func openEventBus(ctx context.Context, cfg *config.Config, pool *database.Database, log logger.Logger) (*events.EventBus, error) {
	switch cfg.EventsDriver {
	case config.EventsMemory:
		return events.NewInMemoryEventBus(log), nil
	case config.EventsSQL:
		bus, err := events.NewEventBusWithForwarder(pool.DB(), cfg.ServiceName, log)
		if err != nil {
			return nil, err
		}
		if err := bus.StartForwarder(ctx); err != nil {
			_ = bus.Close()
			return nil, err
		}
		return bus, nil
	default:
		return nil, nil
	}
}

// healthChecks lists only the configured dependencies so that missing ones
// are reported as disabled rather than probed through a nil pointer.
func healthChecks(storage persistence.Driver, rc *cache.RedisClient, bus *events.EventBus) httpx.HealthChecks {
	checks := httpx.HealthChecks{Storage: storage}
	if rc != nil {
		checks.Redis = rc
	}
	if bus != nil {
		checks.EventBus = bus
	}
	return checks
}

func sessionBackend(rc *cache.RedisClient) string {
	if rc != nil {
		return "redis"
	}
	return "cookie"
}
