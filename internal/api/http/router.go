package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/kanban-board/internal/api/http/handlers"
	"github.com/spec-kit/kanban-board/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Board          *handlers.BoardHandler
	Snapshot       *handlers.SnapshotHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	app.Post("/auth/token", cfg.Auth.IssueToken)

	app.Get("/board", cfg.AuthMiddleware.Optional, cfg.Board.GetBoard)
	prefs := app.Group("/board/preferences", cfg.AuthMiddleware.Handle)
	prefs.Get("", cfg.Board.GetPreferences)
	prefs.Put("", cfg.Board.PutPreferences)

	app.Get("/tickets", cfg.Snapshot.ListTickets)
	app.Get("/users", cfg.Snapshot.ListUsers)
	app.Post("/snapshot/refresh", cfg.AuthMiddleware.Handle, cfg.Snapshot.Refresh)
}

// NewApp builds a fiber app with middlewares and routes registered.
func NewApp(cfg AppConfig, routes RouteConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, cfg.Logger, cfg.Metrics, cfg.RequestTimeout)
	RegisterRoutes(app, routes)
	return app
}
