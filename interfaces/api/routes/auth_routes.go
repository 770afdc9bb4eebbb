package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers) {
	auth := api.Group("/auth")
	auth.Post("/signup", h.AuthHandler.Signup)
	auth.Post("/login", h.AuthHandler.Login)
	auth.Get("/me", middleware.Protected(h.JWTSecret), h.AuthHandler.Me)
}
