package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskAttachment is a file stored alongside a task. ObjectKey addresses the
// blob in the configured storage backend (local disk or S3-compatible).
type TaskAttachment struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TaskID      uuid.UUID `gorm:"not null;index"`
	FileName    string    `gorm:"not null"`
	ObjectKey   string    `gorm:"uniqueIndex;not null"`
	ContentType string
	Size        int64
	CreatedAt   time.Time
}

func (TaskAttachment) TableName() string {
	return "task_attachments"
}
