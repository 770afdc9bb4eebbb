package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/infrastructure/websocket"
	"taskhub/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, hub *websocket.Hub) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h)
	SetupTaskRoutes(api, h)
	SetupEmployeeRoutes(api, h)
	SetupUserRoutes(api, h)
	SetupAnalyticsRoutes(api, h)
	SetupNotificationRoutes(api, h)

	// WebSocket endpoint lives outside the API group.
	SetupWebSocketRoutes(app, h, hub)
}
