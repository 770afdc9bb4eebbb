package services

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
)

// TaskService is the single authority over task state transitions and edits.
type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
	GetUserTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	ListTasks(ctx context.Context, offset, limit int) ([]*models.Task, int64, error)
	// UpdateTask is a full replace of title/description/deadline/priority/status.
	UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	// TransitionStatus changes only the status, maintaining the completion
	// timestamp invariant.
	TransitionStatus(ctx context.Context, taskID uuid.UUID, status string) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
	SearchTasksByTitle(ctx context.Context, title string) ([]*models.Task, error)
	FilterTasksByStatus(ctx context.Context, status string) ([]*models.Task, error)
	FilterTasksByPriority(ctx context.Context, priority string) ([]*models.Task, error)
}
