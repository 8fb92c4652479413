// Package jobs provides scheduled background tasks for the laundry service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. BookingExpiryJob - cancels pending bookings whose booking day is already over.
// Runs on BOOKING_EXPIRY_SCHEDULE, hourly by default.
// 2. StatsReportJob - logs the admin dashboard counters every hour.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireBookingsHandler, statsHandler, cfg.BookingExpirySchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. An invalid schedule
// fails StartAll, which stops any job already started.
package jobs
