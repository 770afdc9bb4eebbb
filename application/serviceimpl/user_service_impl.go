package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/clock"
	"taskhub/pkg/config"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

const tokenTTL = 7 * 24 * time.Hour

type userService struct {
	userRepo  repositories.UserRepository
	taskRepo  repositories.TaskRepository
	mailer    ports.Mailer
	jwtSecret string
	admin     config.AdminConfig
	clk       clock.Clock
}

func NewUserService(
	userRepo repositories.UserRepository,
	taskRepo repositories.TaskRepository,
	mailer ports.Mailer,
	jwtSecret string,
	admin config.AdminConfig,
	clk clock.Clock,
) services.UserService {
	return &userService{
		userRepo:  userRepo,
		taskRepo:  taskRepo,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		admin:     admin,
		clk:       clk,
	}
}

func (s *userService) Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	_, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, models.ErrEmailTaken
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleEmployee,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Welcome mail is best effort; signup succeeds regardless.
	body := fmt.Sprintf("Hello %s,\n\nYour account has been created. You can now log in with %s.",
		user.Name, user.Email)
	if err := s.mailer.Send(ctx, user.Email, "Welcome to TaskHub", body); err != nil {
		logger.Warn("Failed to send welcome mail", "email", user.Email, "error", err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", nil, models.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) ListEmployees(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.ListByRole(ctx, models.RoleEmployee)
}

func (s *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	count, err := s.taskRepo.CountByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrUserHasTasks
	}

	return s.userRepo.Delete(ctx, userID)
}

func (s *userService) EnsureAdmin(ctx context.Context) error {
	_, err := s.userRepo.GetByRole(ctx, models.RoleAdmin)
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		ID:       uuid.New(),
		Name:     s.admin.Name,
		Email:    s.admin.Email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Admin account created", "email", admin.Email)
	return nil
}

func (s *userService) GenerateJWT(user *models.User) (string, error) {
	now := s.clk.Now()
	claims := utils.JWTClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
