package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	bookingExpiryJob *BookingExpiryJob
	statsReportJob   *StatsReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// An empty expirySchedule falls back to DefaultBookingExpirySchedule.
func NewJobManager(
	expireBookingsHandler bookingExpirer,
	statsHandler statsReader,
	expirySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		bookingExpiryJob: NewBookingExpiryJob(expireBookingsHandler, expirySchedule, logger),
		statsReportJob:   NewStatsReportJob(statsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.bookingExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start booking expiry job: %w", err)
	}

	if err := jm.statsReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.bookingExpiryJob.Stop()
		return fmt.Errorf("failed to start stats report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.statsReportJob.Stop()
	jm.bookingExpiryJob.Stop()
}
