package dto

import (
	"taskhub/domain/models"
)

// TaskToResponse maps a task entity to its API shape. The owner name is taken
// from the preloaded association when present.
func TaskToResponse(task *models.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:                  task.ID,
		Title:               task.Title,
		Description:         task.Description,
		Deadline:            task.Deadline.Format(DeadlineLayout),
		Priority:            task.Priority,
		Status:              task.Status.String(),
		CompletedAt:         task.CompletedAt,
		TimeEstimateMinutes: task.TimeEstimateMinutes,
		EmployeeID:          task.UserID,
		CreatedAt:           task.CreatedAt,
	}
	if task.User.Name != "" {
		resp.EmployeeName = task.User.Name
	}
	return resp
}

func TasksToResponses(tasks []*models.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = *TaskToResponse(t)
	}
	return out
}

func UserToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

func UsersToResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = *UserToResponse(u)
	}
	return out
}

func NotificationToResponse(n *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
}

func NotificationsToResponses(ns []*models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		out[i] = *NotificationToResponse(n)
	}
	return out
}
