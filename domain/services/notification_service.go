package services

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

type NotificationService interface {
	// Notify persists an in-app notification for the user. Persistence errors
	// are logged, never surfaced; the triggering operation must not fail.
	Notify(ctx context.Context, user *models.User, message string)
	// SendDeadlineReminders emails owners of tasks due tomorrow. Per-task send
	// failures are logged and skipped; the batch always runs to completion.
	SendDeadlineReminders(ctx context.Context)
	// GetUserNotifications returns the user's notifications, newest first.
	GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error)
}
