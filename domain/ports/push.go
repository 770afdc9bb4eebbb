package ports

import (
	"github.com/google/uuid"

	"taskhub/domain/models"
)

// NotificationPusher delivers a freshly persisted notification to connected
// clients. Best effort; a user with no open connection is not an error.
type NotificationPusher interface {
	Push(userID uuid.UUID, notification *models.Notification)
}
