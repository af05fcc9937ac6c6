package api

import (
	"context"

	"github.com/curkin/adminconsole/internal/services/admin/routepath"
)

const (
	defaultTrendDays       = 30
	defaultPerformanceDays = 7
)

// SystemOverview is the platform-wide user and analysis summary.
type SystemOverview struct {
	Users    UserCounts     `json:"users"`
	Analyses AnalysisCounts `json:"analyses"`
}

type UserCounts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Admins    int `json:"admins"`
	Recent24h int `json:"recent_24h"`
}

type AnalysisCounts struct {
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	Failed      int     `json:"failed"`
	Processing  int     `json:"processing"`
	SuccessRate float64 `json:"success_rate"`
	Recent24h   int     `json:"recent_24h"`
}

// UsageTrends holds daily aggregates for the requested window.
type UsageTrends struct {
	DailyAnalyses []DailyCount `json:"daily_analyses"`
	DailyUsers    []DailyCount `json:"daily_users"`
}

// DailyCount is one day of an aggregation pipeline result.
type DailyCount struct {
	Day       DayKey `json:"_id"`
	Count     int    `json:"count"`
	Completed int    `json:"completed"`
	Failed    int    `json:"failed"`
	NewUsers  int    `json:"new_users"`
}

type DayKey struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// PerformanceMetrics wraps the performance block of the analytics endpoint.
type PerformanceMetrics struct {
	Performance Performance `json:"performance"`
}

type Performance struct {
	AvgProcessingTime float64 `json:"avg_processing_time"`
	SuccessRate       float64 `json:"success_rate"`
	UserEngagement    float64 `json:"user_engagement"`
}

// SystemOverview fetches the analytics overview.
func (c *Client) SystemOverview(ctx context.Context) (SystemOverview, error) {
	return decode[SystemOverview](c.Get(ctx, routepath.AnalyticsOverview, nil))
}

// UsageTrends fetches daily trends for the last days days (30 when <= 0).
func (c *Client) UsageTrends(ctx context.Context, days int) (UsageTrends, error) {
	if days <= 0 {
		days = defaultTrendDays
	}
	return decode[UsageTrends](c.Get(ctx, routepath.AnalyticsUsageTrends, Params{}.AddInt("days", days)))
}

// PerformanceMetrics fetches performance metrics for the last days days
// (7 when <= 0).
func (c *Client) PerformanceMetrics(ctx context.Context, days int) (PerformanceMetrics, error) {
	if days <= 0 {
		days = defaultPerformanceDays
	}
	return decode[PerformanceMetrics](c.Get(ctx, routepath.AnalyticsPerformance, Params{}.AddInt("days", days)))
}
