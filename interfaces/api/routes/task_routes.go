package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
)

// SetupTaskRoutes wires the administrator task surface, including search,
// filters and attachments.
func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.Protected(h.JWTSecret))

	// Static segments before :id so they are not captured as IDs.
	tasks.Get("/search", middleware.AdminOnly(), h.TaskHandler.SearchTasks)
	tasks.Get("/status/:status", middleware.AdminOnly(), h.TaskHandler.FilterByStatus)
	tasks.Get("/priority/:priority", middleware.AdminOnly(), h.TaskHandler.FilterByPriority)

	tasks.Post("/", middleware.AdminOnly(), h.TaskHandler.CreateTask)
	tasks.Get("/", middleware.AdminOnly(), h.TaskHandler.ListTasks)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", middleware.AdminOnly(), h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", middleware.AdminOnly(), h.TaskHandler.DeleteTask)

	tasks.Post("/:id/attachments", h.AttachmentHandler.Upload)
	tasks.Get("/:id/attachments", h.AttachmentHandler.List)
	tasks.Delete("/:id/attachments/:attachmentId", h.AttachmentHandler.Delete)
}
