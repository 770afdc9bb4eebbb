package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"type:text"`
	// Deadline is a calendar date; the time component is always midnight UTC.
	Deadline time.Time  `gorm:"type:date"`
	Priority string     `gorm:"default:'Medium'"`
	Status   TaskStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	// CompletedAt is non-nil iff Status is COMPLETED.
	CompletedAt *time.Time
	// TimeEstimateMinutes is set once by the assigner, never recomputed.
	TimeEstimateMinutes *int
	UserID              uuid.UUID `gorm:"not null;index"`
	User                User      `gorm:"foreignKey:UserID"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// IsCompleted reports whether the task is in the COMPLETED state.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}
