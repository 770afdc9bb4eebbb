package routes

import (
	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"taskhub/infrastructure/websocket"
	"taskhub/interfaces/api/handlers"
	"taskhub/pkg/utils"
)

// SetupWebSocketRoutes wires the live notification stream. Browsers cannot
// set headers on WebSocket upgrades, so the token is read from the query
// string first and the Authorization header second.
func SetupWebSocketRoutes(app *fiber.App, h *handlers.Handlers, hub *websocket.Hub) {
	app.Use("/ws/notifications", func(c *fiber.Ctx) error {
		if !fiberws.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		token := c.Query("token")
		if token == "" {
			token = utils.ExtractTokenFromHeader(c.Get("Authorization"))
		}

		userCtx, err := utils.ValidateToken(token, h.JWTSecret)
		if err != nil {
			return utils.UnauthorizedResponse(c, "Invalid token")
		}

		c.Locals("user_id", userCtx.ID)
		return c.Next()
	})

	app.Get("/ws/notifications", fiberws.New(func(conn *fiberws.Conn) {
		userID, ok := conn.Locals("user_id").(uuid.UUID)
		if !ok {
			conn.Close()
			return
		}

		hub.Register(userID, conn)
		defer hub.Unregister(userID, conn)

		// Server-push only; the read loop exists to detect disconnects.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}
