package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByRole(ctx context.Context, role models.UserRole) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ListByRole(ctx context.Context, role models.UserRole) ([]*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
