package services

import (
	"context"
	"io"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

type AttachmentService interface {
	Upload(ctx context.Context, taskID uuid.UUID, fileName, contentType string, size int64, reader io.Reader) (*models.TaskAttachment, error)
	ListForTask(ctx context.Context, taskID uuid.UUID) ([]*models.TaskAttachment, error)
	Delete(ctx context.Context, attachmentID uuid.UUID) error
	// URL resolves the serving URL for a stored attachment.
	URL(attachment *models.TaskAttachment) string
}
