package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
)

func SetupAnalyticsRoutes(api fiber.Router, h *handlers.Handlers) {
	analytics := api.Group("/analytics")
	analytics.Use(middleware.Protected(h.JWTSecret))

	analytics.Get("/me", h.AnalyticsHandler.MyAnalytics)
	analytics.Get("/users/:userId", middleware.AdminOnly(), h.AnalyticsHandler.UserAnalytics)
}
