package dto

import (
	"time"

	"github.com/google/uuid"
)

// DeadlineLayout is the wire format for task deadlines (calendar date, no time).
const DeadlineLayout = "2006-01-02"

type CreateTaskRequest struct {
	Title               string    `json:"title" validate:"required,min=1,max=200"`
	Description         string    `json:"description" validate:"omitempty,max=2000"`
	Priority            string    `json:"priority" validate:"omitempty,max=50"`
	Deadline            string    `json:"deadline" validate:"required,datetime=2006-01-02"`
	EmployeeID          uuid.UUID `json:"employeeId" validate:"required"`
	TimeEstimateMinutes *int      `json:"timeEstimateMinutes" validate:"omitempty,min=1"`
}

// UpdateTaskRequest is a full replace of the mutable task fields, not a
// partial patch. Every field is written unconditionally.
type UpdateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Deadline    string `json:"deadline" validate:"required,datetime=2006-01-02"`
	Priority    string `json:"priority" validate:"omitempty,max=50"`
	Status      string `json:"status" validate:"required"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type TaskResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Deadline            string     `json:"deadline"`
	Priority            string     `json:"priority"`
	Status              string     `json:"status"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
	TimeEstimateMinutes *int       `json:"timeEstimateMinutes,omitempty"`
	EmployeeID          uuid.UUID  `json:"employeeId"`
	EmployeeName        string     `json:"employeeName,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}
