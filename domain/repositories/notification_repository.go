package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	// GetByUserID returns the user's notifications, most recent first.
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error)
}
