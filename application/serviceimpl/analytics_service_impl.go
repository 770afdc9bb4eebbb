package serviceimpl

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/infrastructure/redis"
	"taskhub/pkg/clock"
	"taskhub/pkg/logger"
)

const analyticsCacheTTL = 60 * time.Second

// weekdayKeys is the fixed bucket order of the weekly trend map.
var weekdayKeys = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

type analyticsService struct {
	taskRepo repositories.TaskRepository
	cache    *redis.Client // nil when Redis is not configured
	clk      clock.Clock
}

func NewAnalyticsService(taskRepo repositories.TaskRepository, cache *redis.Client, clk clock.Clock) services.AnalyticsService {
	return &analyticsService{
		taskRepo: taskRepo,
		cache:    cache,
		clk:      clk,
	}
}

func (s *analyticsService) CompletionPercentage(ctx context.Context, userID uuid.UUID) (float64, error) {
	total, err := s.taskRepo.CountByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0.0, nil
	}

	completed, err := s.taskRepo.CountByUserIDAndStatus(ctx, userID, models.StatusCompleted)
	if err != nil {
		return 0, err
	}

	percentage := float64(completed) / float64(total) * 100
	// Round half-up to one decimal place.
	return math.Round(percentage*10) / 10, nil
}

func (s *analyticsService) WeeklyCompletionTrends(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	today := s.clk.Today()
	start := today.AddDate(0, 0, -7)
	end := today.AddDate(0, 0, 1)

	tasks, err := s.taskRepo.GetByUserAndStatusAndCompletedBetween(ctx, userID, models.StatusCompleted, start, end)
	if err != nil {
		return nil, err
	}

	trends := make(map[string]int64, len(weekdayKeys))
	for _, day := range weekdayKeys {
		trends[day] = 0
	}

	// An eight-day window means the boundary weekday can receive counts from
	// both ends; they accumulate in the same bucket.
	for _, task := range tasks {
		if task.CompletedAt == nil {
			continue
		}
		day := strings.ToUpper(task.CompletedAt.UTC().Weekday().String())
		trends[day]++
	}

	return trends, nil
}

func (s *analyticsService) AverageCompletionTime(ctx context.Context, userID uuid.UUID) (*float64, error) {
	tasks, err := s.taskRepo.GetByUserAndStatus(ctx, userID, models.StatusCompleted)
	if err != nil {
		return nil, err
	}

	var sum, count int64
	for _, task := range tasks {
		if task.TimeEstimateMinutes == nil {
			continue
		}
		sum += int64(*task.TimeEstimateMinutes)
		count++
	}

	if count == 0 {
		return nil, nil
	}

	avg := float64(sum) / float64(count)
	return &avg, nil
}

func (s *analyticsService) Summary(ctx context.Context, userID uuid.UUID) (*dto.AnalyticsResponse, error) {
	cacheKey := "analytics:" + userID.String()

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			var resp dto.AnalyticsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	percentage, err := s.CompletionPercentage(ctx, userID)
	if err != nil {
		return nil, err
	}

	trends, err := s.WeeklyCompletionTrends(ctx, userID)
	if err != nil {
		return nil, err
	}

	average, err := s.AverageCompletionTime(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AnalyticsResponse{
		CompletionPercentage:  percentage,
		WeeklyTrends:          trends,
		AverageCompletionTime: average,
	}

	if s.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, analyticsCacheTTL); err != nil {
				logger.Debug("Failed to cache analytics summary", "user_id", userID, "error", err)
			}
		}
	}

	return resp, nil
}
