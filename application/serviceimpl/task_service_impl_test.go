package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/pkg/clock"
)

type taskServiceFixture struct {
	svc       *taskService
	taskRepo  *fakeTaskRepo
	userRepo  *fakeUserRepo
	notifRepo *fakeNotificationRepo
	events    *recordingPublisher
	clk       clock.Fixed
}

func newTaskServiceFixture(t *testing.T) *taskServiceFixture {
	t.Helper()

	taskRepo := newFakeTaskRepo()
	userRepo := newFakeUserRepo()
	notifRepo := &fakeNotificationRepo{}
	events := &recordingPublisher{}
	clk := clock.Fixed{Instant: time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)}

	notifications := NewNotificationService(notifRepo, taskRepo, &recordingMailer{}, nil, clk)
	svc := NewTaskService(taskRepo, userRepo, notifications, events, clk).(*taskService)

	return &taskServiceFixture{
		svc:       svc,
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		events:    events,
		clk:       clk,
	}
}

func (f *taskServiceFixture) seedUser(t *testing.T) *models.User {
	t.Helper()
	user := &models.User{ID: uuid.New(), Name: "Alice", Email: "alice@x.com", Role: models.RoleEmployee}
	if err := f.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (f *taskServiceFixture) seedTask(t *testing.T, userID uuid.UUID, status models.TaskStatus) *models.Task {
	t.Helper()
	task := &models.Task{
		ID:       uuid.New(),
		Title:    "Write report",
		Deadline: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Priority: "High",
		Status:   status,
		UserID:   userID,
	}
	if status == models.StatusCompleted {
		at := f.clk.Instant.Add(-24 * time.Hour)
		task.CompletedAt = &at
	}
	if err := f.taskRepo.Create(context.Background(), task); err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}

func TestCreateTask(t *testing.T) {
	f := newTaskServiceFixture(t)
	user := f.seedUser(t)

	task, err := f.svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		Title:      "Prepare slides",
		Deadline:   "2026-03-15",
		EmployeeID: user.ID,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if task.Status != models.StatusPending {
		t.Errorf("status = %s, want PENDING", task.Status)
	}
	if task.Priority != "Medium" {
		t.Errorf("priority = %q, want default Medium", task.Priority)
	}
	if task.CompletedAt != nil {
		t.Errorf("completedAt = %v, want nil", task.CompletedAt)
	}
	if !task.Deadline.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("deadline = %v, want 2026-03-15 midnight UTC", task.Deadline)
	}

	msgs := f.notifRepo.messages(user.ID)
	if len(msgs) != 1 || msgs[0] != "New task assigned: Prepare slides" {
		t.Errorf("notifications = %v, want single assignment message", msgs)
	}

	if kinds := f.events.kinds(); len(kinds) != 1 || kinds[0] != "created" {
		t.Errorf("events = %v, want [created]", kinds)
	}
}

func TestCreateTaskUnknownOwner(t *testing.T) {
	f := newTaskServiceFixture(t)

	_, err := f.svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		Title:      "Orphan",
		Deadline:   "2026-03-15",
		EmployeeID: uuid.New(),
	})
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}

	if len(f.taskRepo.tasks) != 0 {
		t.Errorf("task store has %d entries, want 0", len(f.taskRepo.tasks))
	}
}

func TestTransitionStatusTimestamps(t *testing.T) {
	tests := []struct {
		name          string
		from          models.TaskStatus
		to            string
		wantStamp     bool
		wantSameStamp bool
	}{
		{"pending to completed sets timestamp", models.StatusPending, "COMPLETED", true, false},
		{"completed to pending clears timestamp", models.StatusCompleted, "PENDING", false, false},
		{"completed to completed keeps original", models.StatusCompleted, "COMPLETED", true, true},
		{"pending to deferred leaves nil", models.StatusPending, "DEFERRED", false, false},
		{"lowercase input accepted", models.StatusPending, "completed", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTaskServiceFixture(t)
			user := f.seedUser(t)
			task := f.seedTask(t, user.ID, tt.from)
			original := task.CompletedAt

			updated, err := f.svc.TransitionStatus(context.Background(), task.ID, tt.to)
			if err != nil {
				t.Fatalf("TransitionStatus: %v", err)
			}

			if tt.wantStamp {
				if updated.CompletedAt == nil {
					t.Fatal("completedAt = nil, want set")
				}
				if tt.wantSameStamp && !updated.CompletedAt.Equal(*original) {
					t.Errorf("completedAt = %v, want original %v", updated.CompletedAt, original)
				}
				if !tt.wantSameStamp && !updated.CompletedAt.Equal(f.clk.Instant) {
					t.Errorf("completedAt = %v, want clock instant %v", updated.CompletedAt, f.clk.Instant)
				}
			} else if updated.CompletedAt != nil {
				t.Errorf("completedAt = %v, want nil", updated.CompletedAt)
			}
		})
	}
}

func TestTransitionStatusNotifications(t *testing.T) {
	f := newTaskServiceFixture(t)
	user := f.seedUser(t)
	task := f.seedTask(t, user.ID, models.StatusPending)

	if _, err := f.svc.TransitionStatus(context.Background(), task.ID, "INPROGRESS"); err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}

	msgs := f.notifRepo.messages(user.ID)
	want := "Task 'Write report' status changed from PENDING to INPROGRESS"
	if len(msgs) != 1 || msgs[0] != want {
		t.Errorf("notifications = %v, want [%q]", msgs, want)
	}

	// Same-status transition is silent.
	if _, err := f.svc.TransitionStatus(context.Background(), task.ID, "INPROGRESS"); err != nil {
		t.Fatalf("TransitionStatus repeat: %v", err)
	}
	if got := f.notifRepo.messages(user.ID); len(got) != 1 {
		t.Errorf("notifications after repeat = %v, want unchanged", got)
	}
}

func TestTransitionStatusInvalid(t *testing.T) {
	f := newTaskServiceFixture(t)
	user := f.seedUser(t)
	task := f.seedTask(t, user.ID, models.StatusPending)

	_, err := f.svc.TransitionStatus(context.Background(), task.ID, "DONE")
	if !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}

	stored, _ := f.taskRepo.GetByID(context.Background(), task.ID)
	if stored.Status != models.StatusPending {
		t.Errorf("status = %s, want PENDING untouched", stored.Status)
	}
}

func TestUpdateTaskNotifications(t *testing.T) {
	tests := []struct {
		name      string
		newTitle  string
		newStatus string
		wantMsgs  []string
	}{
		{
			name:      "no observable change",
			newTitle:  "Write report",
			newStatus: "PENDING",
			wantMsgs:  nil,
		},
		{
			name:      "rename only",
			newTitle:  "Write summary",
			newStatus: "PENDING",
			wantMsgs:  []string{"Task renamed from 'Write report' to 'Write summary'"},
		},
		{
			name:      "rename and status change",
			newTitle:  "Write summary",
			newStatus: "INPROGRESS",
			wantMsgs: []string{
				"Task renamed from 'Write report' to 'Write summary'",
				"Status changed from PENDING to INPROGRESS",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTaskServiceFixture(t)
			user := f.seedUser(t)
			task := f.seedTask(t, user.ID, models.StatusPending)

			_, err := f.svc.UpdateTask(context.Background(), task.ID, &dto.UpdateTaskRequest{
				Title:    tt.newTitle,
				Deadline: "2026-03-10",
				Priority: "High",
				Status:   tt.newStatus,
			})
			if err != nil {
				t.Fatalf("UpdateTask: %v", err)
			}

			msgs := f.notifRepo.messages(user.ID)
			if len(msgs) != len(tt.wantMsgs) {
				t.Fatalf("notifications = %v, want %v", msgs, tt.wantMsgs)
			}
			for i := range tt.wantMsgs {
				if msgs[i] != tt.wantMsgs[i] {
					t.Errorf("notification[%d] = %q, want %q", i, msgs[i], tt.wantMsgs[i])
				}
			}
		})
	}
}

func TestUpdateTaskSharesCompletionBookkeeping(t *testing.T) {
	f := newTaskServiceFixture(t)
	user := f.seedUser(t)
	task := f.seedTask(t, user.ID, models.StatusPending)

	updated, err := f.svc.UpdateTask(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Title:    task.Title,
		Deadline: "2026-03-10",
		Priority: "High",
		Status:   "COMPLETED",
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.CompletedAt == nil || !updated.CompletedAt.Equal(f.clk.Instant) {
		t.Errorf("completedAt = %v, want %v", updated.CompletedAt, f.clk.Instant)
	}

	reverted, err := f.svc.UpdateTask(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Title:    task.Title,
		Deadline: "2026-03-10",
		Priority: "High",
		Status:   "PENDING",
	})
	if err != nil {
		t.Fatalf("UpdateTask revert: %v", err)
	}
	if reverted.CompletedAt != nil {
		t.Errorf("completedAt = %v, want nil after leaving COMPLETED", reverted.CompletedAt)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	f := newTaskServiceFixture(t)

	_, err := f.svc.UpdateTask(context.Background(), uuid.New(), &dto.UpdateTaskRequest{
		Title:    "Ghost",
		Deadline: "2026-03-10",
		Status:   "PENDING",
	})
	if !errors.Is(err, models.ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	f := newTaskServiceFixture(t)
	user := f.seedUser(t)
	task := f.seedTask(t, user.ID, models.StatusPending)

	if err := f.svc.DeleteTask(context.Background(), task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := f.taskRepo.GetByID(context.Background(), task.ID); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("task still present after delete")
	}

	if err := f.svc.DeleteTask(context.Background(), uuid.New()); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("delete unknown: err = %v, want ErrTaskNotFound", err)
	}
}

func TestSearchTasksByTitle(t *testing.T) {
	tests := []struct {
		name string
		term string
		want int
	}{
		{"matching substring", "report", 1},
		{"term with surrounding spaces", "  report  ", 1},
		{"no match", "invoice", 0},
		{"empty term", "", 0},
		{"whitespace-only term", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTaskServiceFixture(t)
			user := f.seedUser(t)
			f.seedTask(t, user.ID, models.StatusPending)

			tasks, err := f.svc.SearchTasksByTitle(context.Background(), tt.term)
			if err != nil {
				t.Fatalf("SearchTasksByTitle(%q): %v", tt.term, err)
			}
			if len(tasks) != tt.want {
				t.Errorf("got %d tasks, want %d", len(tasks), tt.want)
			}
		})
	}
}

func TestUpdateTaskMissingOwner(t *testing.T) {
	f := newTaskServiceFixture(t)
	user := f.seedUser(t)
	task := f.seedTask(t, user.ID, models.StatusPending)

	// Owner disappears between load and notification.
	f.userRepo.Delete(context.Background(), user.ID)

	updated, err := f.svc.UpdateTask(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Title:    "Write summary",
		Deadline: "2026-03-10",
		Priority: "High",
		Status:   "INPROGRESS",
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	if updated.Title != "Write summary" || updated.Status != models.StatusInProgress {
		t.Errorf("update not applied: %+v", updated)
	}
	if msgs := f.notifRepo.messages(user.ID); len(msgs) != 0 {
		t.Errorf("notifications = %v, want none without an owner", msgs)
	}
}

func TestFilterTasksByStatusInvalid(t *testing.T) {
	f := newTaskServiceFixture(t)

	_, err := f.svc.FilterTasksByStatus(context.Background(), "nope")
	if !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}
