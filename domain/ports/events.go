package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Task event kinds published on the message bus.
const (
	TaskEventCreated       = "created"
	TaskEventUpdated       = "updated"
	TaskEventStatusChanged = "status_changed"
	TaskEventDeleted       = "deleted"
)

type TaskEvent struct {
	Kind       string    `json:"kind"`
	TaskID     uuid.UUID `json:"taskId"`
	UserID     uuid.UUID `json:"userId"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// TaskEventPublisher emits task lifecycle events for external consumers.
// Publishing is fire-and-forget; implementations must not fail the caller.
type TaskEventPublisher interface {
	Publish(ctx context.Context, event *TaskEvent)
}
