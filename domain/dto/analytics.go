package dto

// AnalyticsResponse summarizes a user's completion history.
// AverageCompletionTime is omitted when no completed task carries an estimate.
type AnalyticsResponse struct {
	CompletionPercentage  float64          `json:"completionPercentage"`
	WeeklyTrends          map[string]int64 `json:"weeklyTrends"`
	AverageCompletionTime *float64         `json:"averageCompletionTime,omitempty"`
}
