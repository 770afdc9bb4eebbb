package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

// EmployeeHandler serves the self-service task surface.
type EmployeeHandler struct {
	taskService services.TaskService
}

func NewEmployeeHandler(taskService services.TaskService) *EmployeeHandler {
	return &EmployeeHandler{
		taskService: taskService,
	}
}

func (h *EmployeeHandler) MyTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	principal, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	tasks, err := h.taskService.GetUserTasks(ctx, principal.ID)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToResponses(tasks))
}

// UpdateMyTaskStatus transitions one of the caller's own tasks.
func (h *EmployeeHandler) UpdateMyTaskStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	principal, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	if task.UserID != principal.ID {
		return utils.ForbiddenResponse(c, "Not your task")
	}

	updated, err := h.taskService.TransitionStatus(ctx, taskID, req.Status)
	if err != nil {
		logger.WarnContext(ctx, "Status transition failed", "task_id", taskID, "status", req.Status, "error", err)
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Task status changed", "task_id", taskID, "status", updated.Status)

	return utils.SuccessResponse(c, dto.TaskToResponse(updated))
}
