package models

import "strings"

// TaskStatus is the closed set of task lifecycle states. Any state may move to
// any other state; only COMPLETED carries timestamp bookkeeping.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "INPROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
	StatusDeferred   TaskStatus = "DEFERRED"
	StatusCancelled  TaskStatus = "CANCELLED"
)

// AllStatuses lists every member of the closed set.
func AllStatuses() []TaskStatus {
	return []TaskStatus{StatusPending, StatusInProgress, StatusCompleted, StatusDeferred, StatusCancelled}
}

// ParseTaskStatus parses free text into the closed status set. Input is
// case-insensitive; values outside the set return ErrInvalidStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllStatuses() {
		if status == known {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}

func (s TaskStatus) String() string {
	return string(s)
}
