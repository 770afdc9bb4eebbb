package serviceimpl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/clock"
	"taskhub/pkg/logger"
)

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	taskRepo         repositories.TaskRepository
	mailer           ports.Mailer
	pusher           ports.NotificationPusher
	clk              clock.Clock
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	taskRepo repositories.TaskRepository,
	mailer ports.Mailer,
	pusher ports.NotificationPusher,
	clk clock.Clock,
) services.NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		taskRepo:         taskRepo,
		mailer:           mailer,
		pusher:           pusher,
		clk:              clk,
	}
}

func (s *notificationService) Notify(ctx context.Context, user *models.User, message string) {
	notification := &models.Notification{
		ID:      uuid.New(),
		UserID:  user.ID,
		Message: message,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		logger.Error("Failed to persist notification", "user_id", user.ID, "error", err)
		return
	}

	if s.pusher != nil {
		s.pusher.Push(user.ID, notification)
	}
}

// Reminder is one deadline reminder email, ready to send.
type Reminder struct {
	TaskID  uuid.UUID
	To      string
	Subject string
	Body    string
}

// BuildDeadlineReminders turns due tasks into reminder emails. Tasks without
// an owner email are skipped.
func BuildDeadlineReminders(tasks []*models.Task) []Reminder {
	reminders := make([]Reminder, 0, len(tasks))
	for _, task := range tasks {
		if task.User.Email == "" {
			continue
		}
		reminders = append(reminders, Reminder{
			TaskID:  task.ID,
			To:      task.User.Email,
			Subject: "Deadline Reminder: " + task.Title,
			Body: fmt.Sprintf("Reminder: Task '%s' is due tomorrow\n\nDescription: %s\nPriority: %s",
				task.Title, task.Description, task.Priority),
		})
	}
	return reminders
}

func (s *notificationService) SendDeadlineReminders(ctx context.Context) {
	tomorrow := s.clk.Today().AddDate(0, 0, 1)

	tasks, err := s.taskRepo.GetByDeadline(ctx, tomorrow)
	if err != nil {
		logger.Error("Failed to load tasks for deadline sweep", "error", err)
		return
	}

	reminders := BuildDeadlineReminders(tasks)

	sent := 0
	for _, r := range reminders {
		if err := s.mailer.Send(ctx, r.To, r.Subject, r.Body); err != nil {
			logger.Warn("Failed to send deadline reminder", "task_id", r.TaskID, "to", r.To, "error", err)
			continue
		}
		sent++
	}

	logger.Info("Deadline sweep finished",
		"due_tasks", len(tasks),
		"reminders", len(reminders),
		"sent", sent,
	)
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error) {
	return s.notificationRepo.GetByUserID(ctx, userID)
}
