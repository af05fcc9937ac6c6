package console

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/curkin/adminconsole/internal/services/admin/api"
)

// DefaultAnalyticsDays is the analytics page's initial time range.
const DefaultAnalyticsDays = 30

// AnalyticsView combines the overview with the trend and performance data
// for one time range.
type AnalyticsView struct {
	Days        int                    `json:"days"`
	Overview    api.SystemOverview     `json:"overview"`
	Trends      api.UsageTrends        `json:"trends"`
	Performance api.PerformanceMetrics `json:"performance"`
}

// Analytics renders usage trends and performance for the last days days.
func (c *Console) Analytics(ctx context.Context, days int) error {
	if days <= 0 {
		days = DefaultAnalyticsDays
	}
	view := AnalyticsView{Days: days}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		view.Overview, err = c.client.SystemOverview(gctx)
		return err
	})
	g.Go(func() (err error) {
		view.Trends, err = c.client.UsageTrends(gctx, days)
		return err
	})
	g.Go(func() (err error) {
		view.Performance, err = c.client.PerformanceMetrics(gctx, days)
		return err
	})
	if err := g.Wait(); err != nil {
		return c.fail(err)
	}

	return c.emit(view, func(w io.Writer) {
		p := c.printer
		c.heading(w, fmt.Sprintf("System Analytics (last %d days)", days))
		perf := view.Performance.Performance
		field(w, "Avg Processing Time", p.Sprintf("%.1fs", perf.AvgProcessingTime))
		field(w, "Success Rate", p.Sprintf("%.1f%%", perf.SuccessRate))
		field(w, "User Engagement", p.Sprintf("%.1f%%", perf.UserEngagement))
		field(w, "Total Analyses", p.Sprintf("%d", view.Overview.Analyses.Total))
		field(w, "Completed / Failed", p.Sprintf("%d / %d", view.Overview.Analyses.Completed, view.Overview.Analyses.Failed))
		field(w, "Processing", p.Sprintf("%d", view.Overview.Analyses.Processing))

		c.section(w, "Daily Analyses")
		if len(view.Trends.DailyAnalyses) == 0 {
			fmt.Fprintln(w, "  No data for this range.")
		} else {
			tw := newTable(w, "DATE", "ANALYSES", "COMPLETED", "FAILED")
			for _, day := range view.Trends.DailyAnalyses {
				row(tw, dayLabel(day.Day), day.Count, day.Completed, day.Failed)
			}
			tw.Flush()
		}

		c.section(w, "New Users")
		if len(view.Trends.DailyUsers) == 0 {
			fmt.Fprintln(w, "  No data for this range.")
		} else {
			tw := newTable(w, "DATE", "USERS")
			for _, day := range view.Trends.DailyUsers {
				users := day.NewUsers
				if users == 0 {
					users = day.Count
				}
				row(tw, dayLabel(day.Day), users)
			}
			tw.Flush()
		}
	})
}

func dayLabel(day api.DayKey) string {
	return fmt.Sprintf("%d/%d", day.Month, day.Day)
}
