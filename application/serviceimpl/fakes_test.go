package serviceimpl

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/pkg/clock"
)

// In-memory fakes backing the service tests.

type fakeTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*models.Task)}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *models.Task) error {
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, models.ErrTaskNotFound
	}
	cp := *task
	return &cp, nil
}

func (r *fakeTaskRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	return r.filter(func(t *models.Task) bool { return t.UserID == userID }), nil
}

func (r *fakeTaskRepo) GetByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error) {
	return r.filter(func(t *models.Task) bool { return t.Status == status }), nil
}

func (r *fakeTaskRepo) GetByPriority(ctx context.Context, priority string) ([]*models.Task, error) {
	return r.filter(func(t *models.Task) bool { return t.Priority == priority }), nil
}

func (r *fakeTaskRepo) SearchByTitle(ctx context.Context, title string) ([]*models.Task, error) {
	needle := strings.ToLower(title)
	return r.filter(func(t *models.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), needle)
	}), nil
}

func (r *fakeTaskRepo) GetByDeadline(ctx context.Context, date time.Time) ([]*models.Task, error) {
	day := clock.Midnight(date)
	return r.filter(func(t *models.Task) bool {
		return clock.Midnight(t.Deadline).Equal(day)
	}), nil
}

func (r *fakeTaskRepo) GetByUserAndStatus(ctx context.Context, userID uuid.UUID, status models.TaskStatus) ([]*models.Task, error) {
	return r.filter(func(t *models.Task) bool {
		return t.UserID == userID && t.Status == status
	}), nil
}

func (r *fakeTaskRepo) GetByUserAndStatusAndCompletedBetween(ctx context.Context, userID uuid.UUID, status models.TaskStatus, start, end time.Time) ([]*models.Task, error) {
	return r.filter(func(t *models.Task) bool {
		if t.UserID != userID || t.Status != status || t.CompletedAt == nil {
			return false
		}
		at := *t.CompletedAt
		return !at.Before(start) && at.Before(end)
	}), nil
}

func (r *fakeTaskRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	tasks, _ := r.GetByUserID(ctx, userID)
	return int64(len(tasks)), nil
}

func (r *fakeTaskRepo) CountByUserIDAndStatus(ctx context.Context, userID uuid.UUID, status models.TaskStatus) (int64, error) {
	tasks, _ := r.GetByUserAndStatus(ctx, userID, status)
	return int64(len(tasks)), nil
}

func (r *fakeTaskRepo) List(ctx context.Context, offset, limit int) ([]*models.Task, int64, error) {
	all := r.filter(func(*models.Task) bool { return true })
	sort.Slice(all, func(i, j int) bool { return all[i].Deadline.After(all[j].Deadline) })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *models.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return models.ErrTaskNotFound
	}
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.tasks[id]
	return ok, nil
}

func (r *fakeTaskRepo) filter(keep func(*models.Task) bool) []*models.Task {
	var out []*models.Task
	for _, t := range r.tasks {
		if keep(t) {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out
}

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (r *fakeUserRepo) GetByRole(ctx context.Context, role models.UserRole) (*models.User, error) {
	for _, u := range r.users {
		if u.Role == role {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (r *fakeUserRepo) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	var out []*models.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) ListByRole(ctx context.Context, role models.UserRole) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		if u.Role == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	failCreate    error
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *fakeNotificationRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error) {
	var out []*models.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].UserID == userID {
			cp := *r.notifications[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) messages(userID uuid.UUID) []string {
	var out []string
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n.Message)
		}
	}
	return out
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// recordingMailer captures sends and can fail specific recipients.
type recordingMailer struct {
	sent    []sentMail
	failFor map[string]error
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, body string) error {
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type recordingPublisher struct {
	events []*ports.TaskEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event *ports.TaskEvent) {
	p.events = append(p.events, event)
}

func (p *recordingPublisher) kinds() []string {
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Kind
	}
	return out
}
