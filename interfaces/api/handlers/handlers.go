package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskhub/domain/models"
	"taskhub/domain/services"
	"taskhub/pkg/utils"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService         services.UserService
	TaskService         services.TaskService
	AnalyticsService    services.AnalyticsService
	NotificationService services.NotificationService
	AttachmentService   services.AttachmentService
	JWTSecret           string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler         *AuthHandler
	TaskHandler         *TaskHandler
	EmployeeHandler     *EmployeeHandler
	UserHandler         *UserHandler
	AnalyticsHandler    *AnalyticsHandler
	NotificationHandler *NotificationHandler
	AttachmentHandler   *AttachmentHandler
	JWTSecret           string
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:         NewAuthHandler(services.UserService),
		TaskHandler:         NewTaskHandler(services.TaskService),
		EmployeeHandler:     NewEmployeeHandler(services.TaskService),
		UserHandler:         NewUserHandler(services.UserService),
		AnalyticsHandler:    NewAnalyticsHandler(services.AnalyticsService, services.UserService),
		NotificationHandler: NewNotificationHandler(services.NotificationService),
		AttachmentHandler:   NewAttachmentHandler(services.AttachmentService),
		JWTSecret:           services.JWTSecret,
	}
}

// serviceErrorResponse maps domain errors onto the response envelope.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrTaskNotFound):
		return utils.NotFoundResponse(c, "Task not found")
	case errors.Is(err, models.ErrUserNotFound):
		return utils.NotFoundResponse(c, "User not found")
	case errors.Is(err, models.ErrInvalidStatus):
		return utils.InvalidStatusResponse(c, "Unknown task status")
	case errors.Is(err, models.ErrEmailTaken):
		return utils.ConflictResponse(c, "Email already in use")
	case errors.Is(err, models.ErrUserHasTasks):
		return utils.ConflictResponse(c, "User still owns tasks")
	case errors.Is(err, models.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
