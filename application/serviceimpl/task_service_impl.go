package serviceimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/clock"
	"taskhub/pkg/logger"
)

type taskService struct {
	taskRepo      repositories.TaskRepository
	userRepo      repositories.UserRepository
	notifications services.NotificationService
	events        ports.TaskEventPublisher
	clk           clock.Clock
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	notifications services.NotificationService,
	events ports.TaskEventPublisher,
	clk clock.Clock,
) services.TaskService {
	return &taskService{
		taskRepo:      taskRepo,
		userRepo:      userRepo,
		notifications: notifications,
		events:        events,
		clk:           clk,
	}
}

func (s *taskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	owner, err := s.userRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	deadline, err := time.ParseInLocation(dto.DeadlineLayout, req.Deadline, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline: %w", err)
	}

	priority := req.Priority
	if priority == "" {
		priority = "Medium"
	}

	task := &models.Task{
		ID:                  uuid.New(),
		Title:               req.Title,
		Description:         req.Description,
		Deadline:            deadline,
		Priority:            priority,
		Status:              models.StatusPending,
		TimeEstimateMinutes: req.TimeEstimateMinutes,
		UserID:              owner.ID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.notifications.Notify(ctx, owner, "New task assigned: "+task.Title)
	s.publish(ctx, ports.TaskEventCreated, task)

	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, taskID)
}

func (s *taskService) GetUserTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	return s.taskRepo.GetByUserID(ctx, userID)
}

func (s *taskService) ListTasks(ctx context.Context, offset, limit int) ([]*models.Task, int64, error) {
	return s.taskRepo.List(ctx, offset, limit)
}

func (s *taskService) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	newStatus, err := models.ParseTaskStatus(req.Status)
	if err != nil {
		return nil, err
	}

	deadline, err := time.ParseInLocation(dto.DeadlineLayout, req.Deadline, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline: %w", err)
	}

	oldTitle := task.Title
	oldStatus := task.Status

	task.Title = req.Title
	task.Description = req.Description
	task.Deadline = deadline
	task.Priority = req.Priority
	s.applyStatusChange(task, newStatus)

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	owner, ownerErr := s.userRepo.GetByID(ctx, task.UserID)
	if ownerErr != nil {
		logger.Warn("Owner lookup failed, update notifications skipped",
			"task_id", task.ID, "user_id", task.UserID, "error", ownerErr)
	} else {
		if oldTitle != task.Title {
			s.notifications.Notify(ctx, owner,
				fmt.Sprintf("Task renamed from '%s' to '%s'", oldTitle, task.Title))
		}
		if oldStatus != task.Status {
			s.notifications.Notify(ctx, owner,
				fmt.Sprintf("Status changed from %s to %s", oldStatus, task.Status))
		}
	}

	s.publish(ctx, ports.TaskEventUpdated, task)

	return task, nil
}

func (s *taskService) TransitionStatus(ctx context.Context, taskID uuid.UUID, status string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	newStatus, err := models.ParseTaskStatus(status)
	if err != nil {
		return nil, err
	}

	oldStatus := task.Status
	s.applyStatusChange(task, newStatus)

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	if oldStatus != task.Status {
		if owner, ownerErr := s.userRepo.GetByID(ctx, task.UserID); ownerErr == nil {
			s.notifications.Notify(ctx, owner,
				fmt.Sprintf("Task '%s' status changed from %s to %s", task.Title, oldStatus, task.Status))
		} else {
			logger.Warn("Owner lookup failed, transition notification skipped",
				"task_id", task.ID, "user_id", task.UserID, "error", ownerErr)
		}
		s.publish(ctx, ports.TaskEventStatusChanged, task)
	}

	return task, nil
}

// applyStatusChange is the only place the completion timestamp is written.
// Entering COMPLETED stamps it once; re-completing keeps the original stamp;
// leaving COMPLETED clears it.
func (s *taskService) applyStatusChange(task *models.Task, status models.TaskStatus) {
	task.Status = status
	if status == models.StatusCompleted {
		if task.CompletedAt == nil {
			now := s.clk.Now()
			task.CompletedAt = &now
		}
	} else {
		task.CompletedAt = nil
	}
}

func (s *taskService) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	exists, err := s.taskRepo.ExistsByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return err
	}

	s.publish(ctx, ports.TaskEventDeleted, &models.Task{ID: taskID})
	return nil
}

func (s *taskService) SearchTasksByTitle(ctx context.Context, title string) ([]*models.Task, error) {
	// A blank term would otherwise degenerate to ILIKE '%%' and match all.
	title = strings.TrimSpace(title)
	if title == "" {
		return []*models.Task{}, nil
	}
	return s.taskRepo.SearchByTitle(ctx, title)
}

func (s *taskService) FilterTasksByStatus(ctx context.Context, status string) ([]*models.Task, error) {
	parsed, err := models.ParseTaskStatus(status)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.GetByStatus(ctx, parsed)
}

func (s *taskService) FilterTasksByPriority(ctx context.Context, priority string) ([]*models.Task, error) {
	return s.taskRepo.GetByPriority(ctx, priority)
}

func (s *taskService) publish(ctx context.Context, kind string, task *models.Task) {
	s.events.Publish(ctx, &ports.TaskEvent{
		Kind:       kind,
		TaskID:     task.ID,
		UserID:     task.UserID,
		Status:     task.Status.String(),
		OccurredAt: s.clk.Now(),
	})
}
