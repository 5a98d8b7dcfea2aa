package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manyabajaj09/audience-assist/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Messages  *handlers.MessagesHandler
	Tickets   *handlers.TicketsHandler
	Analytics *handlers.AnalyticsHandler
	Users     *handlers.UsersHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	messages := api.Group("/messages")
	messages.Post("/ingest", cfg.Messages.Ingest)
	messages.Post("/suggest-reply", cfg.Messages.SuggestReply)
	messages.Get("/", cfg.Messages.List)
	messages.Get("/:id", cfg.Messages.Get)

	tickets := api.Group("/tickets")
	tickets.Post("/", cfg.Tickets.Create)
	tickets.Get("/", cfg.Tickets.List)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Patch("/:id", cfg.Tickets.Update)
	tickets.Patch("/:id/assign", cfg.Tickets.Assign)
	tickets.Patch("/:id/status", cfg.Tickets.SetStatus)
	tickets.Post("/:id/close", cfg.Tickets.Close)
	tickets.Get("/:id/activity", cfg.Tickets.Activity)

	users := api.Group("/users")
	users.Post("/", cfg.Users.Create)
	users.Get("/", cfg.Users.List)

	analytics := api.Group("/analytics")
	analytics.Get("/overview", cfg.Analytics.Overview)
	analytics.Get("/messages-by-tag", cfg.Analytics.MessagesByTag)
	analytics.Get("/messages-by-channel", cfg.Analytics.MessagesByChannel)
	analytics.Get("/messages-by-priority", cfg.Analytics.MessagesByPriority)
	analytics.Get("/sentiment-distribution", cfg.Analytics.SentimentDistribution)
	analytics.Get("/ticket-status", cfg.Analytics.TicketStatus)
	analytics.Get("/response-times", cfg.Analytics.ResponseTimes)
	analytics.Get("/timeline", cfg.Analytics.Timeline)
}
