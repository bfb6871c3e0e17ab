package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/wherearethenoodles/pkg/cache"
	"github.com/ghuser/wherearethenoodles/pkg/config"
	"github.com/ghuser/wherearethenoodles/pkg/database"
	"github.com/ghuser/wherearethenoodles/pkg/events"
	"github.com/ghuser/wherearethenoodles/pkg/logger"
	"github.com/ghuser/wherearethenoodles/services/inventory/infrastructure/persistence"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to each service's route and subscriber registration.
//
// Logging: app.Logger is backed by a trace-aware handler. Use the context
// methods and trace_id, span_id and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item added", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Optional dependencies are nil when not configured: Db without a postgres
// driver, Redis without REDIS_URL, EventBus with EVENTS_DRIVER=none,
// SessionStore in the worker process.
type Application struct {
	Config       *config.Config
	Logger       logger.Logger
	Storage      persistence.Driver
	Db           *database.Database
	EventBus     *events.EventBus
	Redis        *cache.RedisClient
	SessionStore sessions.Store
	PageCache    *cache.PageCache
}
