package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"taskhub/pkg/logger"
)

// Scheduler runs cron jobs on a background goroutine, independent of request
// handling. Jobs are singleton: a run that overlaps its schedule is skipped.
type Scheduler struct {
	inner   *gocron.Scheduler
	jobs    map[string]*gocron.Job
	mu      sync.Mutex
	running bool
}

func New(tz *time.Location) *Scheduler {
	s := gocron.NewScheduler(tz)
	s.SingletonModeAll()
	return &Scheduler{
		inner: s,
		jobs:  make(map[string]*gocron.Job),
	}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.inner.StartAsync()
	s.running = true
	logger.Info("Scheduler started")
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.inner.Stop()
	s.running = false
	logger.Info("Scheduler stopped")
}

// AddJob registers task under id with a standard 5-field cron expression.
func (s *Scheduler) AddJob(id, cronExpr string, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job %s already registered", id)
	}

	job, err := s.inner.Cron(cronExpr).Do(func() {
		logger.Info("Job run started", "job", id)
		task()
		logger.Info("Job run finished", "job", id)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", id, err)
	}

	s.jobs[id] = job
	logger.Info("Job scheduled", "job", id, "cron", cronExpr, "next_run", job.NextRun().Format(time.RFC3339))
	return nil
}

func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
