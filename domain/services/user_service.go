package services

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
)

type UserService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	// ListEmployees returns all users holding the EMPLOYEE role.
	ListEmployees(ctx context.Context) ([]*models.User, error)
	// DeleteUser refuses to remove a user who still owns tasks.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	// EnsureAdmin creates the initial administrator account when none exists.
	EnsureAdmin(ctx context.Context) error
	GenerateJWT(user *models.User) (string, error)
}
