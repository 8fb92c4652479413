package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// StatsReportSchedule logs the dashboard counters every hour at half past.
const StatsReportSchedule = "0 30 * * * *"

type statsReader interface {
	Handle(ctx context.Context, query queries.GetDashboardStatsQuery) (services.DashboardStats, error)
}

// StatsReportJob writes the dashboard counters to the log so that order
// volume can be followed without opening the admin dashboard.
type StatsReportJob struct {
	handler statsReader
	cron    *cron.Cron
	clock   func() time.Time
	logger  *slog.Logger
}

func NewStatsReportJob(handler statsReader, logger *slog.Logger) *StatsReportJob {
	return &StatsReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		clock:   time.Now,
		logger:  logger.With("component", "stats_report_job"),
	}
}

func (j *StatsReportJob) Start() error {
	if _, err := j.cron.AddFunc(StatsReportSchedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats report job started", "schedule", StatsReportSchedule)
	return nil
}

func (j *StatsReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stats report job stopped")
}

func (j *StatsReportJob) run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetDashboardStatsQuery(j.clock()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Stats report job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Order stats",
		"today", stats.Today,
		"pending", stats.Pending,
		"ongoing", stats.Ongoing,
		"completed", stats.Completed,
		"delivered", stats.Delivered,
		"total", stats.Total)
}
