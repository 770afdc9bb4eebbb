package services

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/dto"
)

// AnalyticsService derives productivity metrics from a user's completion
// history. Read-only; absence of data is zero or nil, never an error.
type AnalyticsService interface {
	// CompletionPercentage returns completed/total as a percentage rounded
	// half-up to one decimal place. A user with no tasks yields 0.0.
	CompletionPercentage(ctx context.Context, userID uuid.UUID) (float64, error)
	// WeeklyCompletionTrends buckets the last week's completions by weekday
	// name. The result always has exactly seven keys, MONDAY through SUNDAY.
	WeeklyCompletionTrends(ctx context.Context, userID uuid.UUID) (map[string]int64, error)
	// AverageCompletionTime is the mean of the original time estimates over
	// completed tasks; nil when no completed task carries an estimate.
	AverageCompletionTime(ctx context.Context, userID uuid.UUID) (*float64, error)
	// Summary combines all three metrics into one response. Results may be
	// served from a short-lived cache.
	Summary(ctx context.Context, userID uuid.UUID) (*dto.AnalyticsResponse, error)
}
