package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskhub/domain/services"
	"taskhub/pkg/utils"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
	userService      services.UserService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService, userService services.UserService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		userService:      userService,
	}
}

// MyAnalytics returns the caller's own productivity summary.
func (h *AnalyticsHandler) MyAnalytics(c *fiber.Ctx) error {
	ctx := c.UserContext()

	principal, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	summary, err := h.analyticsService.Summary(ctx, principal.ID)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, summary)
}

// UserAnalytics returns any user's summary, for administrators.
func (h *AnalyticsHandler) UserAnalytics(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if _, err := h.userService.GetUser(ctx, userID); err != nil {
		return serviceErrorResponse(c, err)
	}

	summary, err := h.analyticsService.Summary(ctx, userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, summary)
}
