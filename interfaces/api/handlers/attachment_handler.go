package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type AttachmentHandler struct {
	attachmentService services.AttachmentService
}

func NewAttachmentHandler(attachmentService services.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
	}
}

func (h *AttachmentHandler) Upload(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open uploaded file", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachment, err := h.attachmentService.Upload(ctx, taskID, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		logger.WarnContext(ctx, "Attachment upload failed", "task_id", taskID, "error", err)
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Attachment uploaded", "task_id", taskID, "attachment_id", attachment.ID)

	return utils.CreatedResponse(c, h.toResponse(attachment))
}

func (h *AttachmentHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	attachments, err := h.attachmentService.ListForTask(ctx, taskID)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	out := make([]dto.AttachmentResponse, len(attachments))
	for i, a := range attachments {
		out[i] = *h.toResponse(a)
	}

	return utils.SuccessResponse(c, out)
}

func (h *AttachmentHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	attachmentID, err := uuid.Parse(c.Params("attachmentId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid attachment ID")
	}

	if err := h.attachmentService.Delete(ctx, attachmentID); err != nil {
		logger.WarnContext(ctx, "Attachment deletion failed", "attachment_id", attachmentID, "error", err)
		return utils.NotFoundResponse(c, "Attachment not found")
	}

	return utils.NoContentResponse(c)
}

func (h *AttachmentHandler) toResponse(a *models.TaskAttachment) *dto.AttachmentResponse {
	return &dto.AttachmentResponse{
		ID:          a.ID,
		TaskID:      a.TaskID,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		Size:        a.Size,
		URL:         h.attachmentService.URL(a),
		CreatedAt:   a.CreatedAt,
	}
}
