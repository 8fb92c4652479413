package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultBookingExpirySchedule runs the expiry sweep at the top of every hour.
const DefaultBookingExpirySchedule = "0 0 * * * *"

type bookingExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireBookingsCommand) (int, error)
}

// BookingExpiryJob cancels pending bookings whose day has already passed.
type BookingExpiryJob struct {
	handler  bookingExpirer
	schedule string
	cron     *cron.Cron
	clock    func() time.Time
	logger   *slog.Logger
}

func NewBookingExpiryJob(handler bookingExpirer, schedule string, logger *slog.Logger) *BookingExpiryJob {
	if schedule == "" {
		schedule = DefaultBookingExpirySchedule
	}
	return &BookingExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		clock:    time.Now,
		logger:   logger.With("component", "booking_expiry_job"),
	}
}

// Start registers the sweep with the configured schedule.
func (j *BookingExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Booking expiry job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running sweep to finish.
func (j *BookingExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Booking expiry job stopped")
}

func (j *BookingExpiryJob) run(ctx context.Context) {
	expired, err := j.handler.Handle(ctx, commands.NewExpireBookingsCommand(j.clock()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Booking expiry job failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Expired stale bookings", "count", expired)
	}
}
