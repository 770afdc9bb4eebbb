package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
)

// SetupEmployeeRoutes wires the self-service surface: own tasks and status
// transitions.
func SetupEmployeeRoutes(api fiber.Router, h *handlers.Handlers) {
	me := api.Group("/me")
	me.Use(middleware.Protected(h.JWTSecret))

	me.Get("/tasks", h.EmployeeHandler.MyTasks)
	me.Patch("/tasks/:id/status", h.EmployeeHandler.UpdateMyTaskStatus)
}
