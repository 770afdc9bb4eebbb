package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) ListEmployees(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := h.userService.ListEmployees(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UsersToResponses(users))
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToResponse(user))
}

// DeleteUser removes an employee account. Users still owning tasks are
// refused with a conflict.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.userService.DeleteUser(ctx, userID); err != nil {
		logger.WarnContext(ctx, "User deletion failed", "user_id", userID, "error", err)
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "User deleted", "user_id", userID)

	return utils.NoContentResponse(c)
}
