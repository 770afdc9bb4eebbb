package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *models.TaskAttachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TaskAttachment, error)
	GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]*models.TaskAttachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
