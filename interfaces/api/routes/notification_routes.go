package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
)

func SetupNotificationRoutes(api fiber.Router, h *handlers.Handlers) {
	notifications := api.Group("/notifications")
	notifications.Use(middleware.Protected(h.JWTSecret))

	notifications.Get("/", h.NotificationHandler.MyNotifications)
}
