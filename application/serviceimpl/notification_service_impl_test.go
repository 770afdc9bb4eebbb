package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/models"
	"taskhub/pkg/clock"
)

func TestNotifyPersists(t *testing.T) {
	notifRepo := &fakeNotificationRepo{}
	clk := clock.Fixed{Instant: time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)}
	svc := NewNotificationService(notifRepo, newFakeTaskRepo(), &recordingMailer{}, nil, clk)

	user := &models.User{ID: uuid.New(), Email: "alice@x.com"}
	svc.Notify(context.Background(), user, "hello")

	msgs := notifRepo.messages(user.ID)
	if len(msgs) != 1 || msgs[0] != "hello" {
		t.Errorf("messages = %v, want [hello]", msgs)
	}
}

func TestNotifySwallowsStoreFailure(t *testing.T) {
	notifRepo := &fakeNotificationRepo{failCreate: errors.New("db down")}
	clk := clock.Fixed{Instant: time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)}
	svc := NewNotificationService(notifRepo, newFakeTaskRepo(), &recordingMailer{}, nil, clk)

	// Must not panic or propagate.
	svc.Notify(context.Background(), &models.User{ID: uuid.New()}, "hello")
}

func TestSendDeadlineReminders(t *testing.T) {
	today := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	seed := func(repo *fakeTaskRepo, deadline time.Time, email string) {
		repo.Create(context.Background(), &models.Task{
			ID:          uuid.New(),
			Title:       "Write report",
			Description: "Quarterly numbers",
			Priority:    "High",
			Status:      models.StatusPending,
			Deadline:    deadline,
			UserID:      uuid.New(),
			User:        models.User{Email: email},
		})
	}

	t.Run("one task due tomorrow", func(t *testing.T) {
		repo := newFakeTaskRepo()
		seed(repo, tomorrow, "alice@x.com")
		seed(repo, tomorrow.AddDate(0, 0, 3), "bob@x.com")

		mailer := &recordingMailer{}
		svc := NewNotificationService(&fakeNotificationRepo{}, repo, mailer, nil, clock.Fixed{Instant: today})
		svc.SendDeadlineReminders(context.Background())

		if len(mailer.sent) != 1 {
			t.Fatalf("sent %d mails, want 1", len(mailer.sent))
		}
		m := mailer.sent[0]
		if m.To != "alice@x.com" {
			t.Errorf("to = %q, want alice@x.com", m.To)
		}
		if m.Subject != "Deadline Reminder: Write report" {
			t.Errorf("subject = %q", m.Subject)
		}
		if !strings.Contains(m.Body, "Task 'Write report' is due tomorrow") {
			t.Errorf("body = %q, missing due-tomorrow line", m.Body)
		}
		if !strings.Contains(m.Body, "Description: Quarterly numbers") || !strings.Contains(m.Body, "Priority: High") {
			t.Errorf("body = %q, missing description or priority", m.Body)
		}
	})

	t.Run("nothing due", func(t *testing.T) {
		repo := newFakeTaskRepo()
		seed(repo, tomorrow.AddDate(0, 0, 5), "alice@x.com")

		mailer := &recordingMailer{}
		svc := NewNotificationService(&fakeNotificationRepo{}, repo, mailer, nil, clock.Fixed{Instant: today})
		svc.SendDeadlineReminders(context.Background())

		if len(mailer.sent) != 0 {
			t.Errorf("sent %d mails, want 0", len(mailer.sent))
		}
	})

	t.Run("ownerless task skipped", func(t *testing.T) {
		repo := newFakeTaskRepo()
		seed(repo, tomorrow, "")
		seed(repo, tomorrow, "carol@x.com")

		mailer := &recordingMailer{}
		svc := NewNotificationService(&fakeNotificationRepo{}, repo, mailer, nil, clock.Fixed{Instant: today})
		svc.SendDeadlineReminders(context.Background())

		if len(mailer.sent) != 1 || mailer.sent[0].To != "carol@x.com" {
			t.Errorf("sent = %v, want single mail to carol@x.com", mailer.sent)
		}
	})

	t.Run("send failure does not stop the batch", func(t *testing.T) {
		repo := newFakeTaskRepo()
		seed(repo, tomorrow, "dead@x.com")
		seed(repo, tomorrow, "alive@x.com")

		mailer := &recordingMailer{failFor: map[string]error{"dead@x.com": errors.New("smtp refused")}}
		svc := NewNotificationService(&fakeNotificationRepo{}, repo, mailer, nil, clock.Fixed{Instant: today})
		svc.SendDeadlineReminders(context.Background())

		if len(mailer.sent) != 1 || mailer.sent[0].To != "alive@x.com" {
			t.Errorf("sent = %v, want single mail to alive@x.com", mailer.sent)
		}
	})
}

func TestBuildDeadlineReminders(t *testing.T) {
	tasks := []*models.Task{
		{ID: uuid.New(), Title: "A", Description: "d", Priority: "Low", User: models.User{Email: "a@x.com"}},
		{ID: uuid.New(), Title: "B", User: models.User{}},
	}

	reminders := BuildDeadlineReminders(tasks)
	if len(reminders) != 1 {
		t.Fatalf("got %d reminders, want 1", len(reminders))
	}
	if reminders[0].To != "a@x.com" || reminders[0].Subject != "Deadline Reminder: A" {
		t.Errorf("reminder = %+v", reminders[0])
	}
}
