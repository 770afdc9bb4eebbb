package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	GetByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error)
	GetByPriority(ctx context.Context, priority string) ([]*models.Task, error)
	// SearchByTitle matches a case-insensitive substring of the title.
	SearchByTitle(ctx context.Context, title string) ([]*models.Task, error)
	// GetByDeadline matches tasks whose deadline equals the given calendar date.
	GetByDeadline(ctx context.Context, date time.Time) ([]*models.Task, error)
	GetByUserAndStatus(ctx context.Context, userID uuid.UUID, status models.TaskStatus) ([]*models.Task, error)
	// GetByUserAndStatusAndCompletedBetween filters on the completion timestamp
	// within [start, end).
	GetByUserAndStatusAndCompletedBetween(ctx context.Context, userID uuid.UUID, status models.TaskStatus, start, end time.Time) ([]*models.Task, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	CountByUserIDAndStatus(ctx context.Context, userID uuid.UUID, status models.TaskStatus) (int64, error)
	// List returns tasks ordered by deadline descending.
	List(ctx context.Context, offset, limit int) ([]*models.Task, int64, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
