package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an immutable in-app message for a user. There is no
// read/unread state; records are append-only.
type Notification struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"not null;index"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (Notification) TableName() string {
	return "notifications"
}
