package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingExpirer struct{ mock.Mock }

func (m *MockBookingExpirer) Handle(ctx context.Context, cmd commands.ExpireBookingsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockStatsReader struct{ mock.Mock }

func (m *MockStatsReader) Handle(ctx context.Context, query queries.GetDashboardStatsQuery) (services.DashboardStats, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(services.DashboardStats), args.Error(1)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestBookingExpiryJob_Run(t *testing.T) {
	now := time.Date(2025, 1, 23, 10, 0, 0, 0, time.UTC)
	handler := new(MockBookingExpirer)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ExpireBookingsCommand) bool {
		return cmd.Validate() == nil && cmd.Today().Equal(now)
	})).Return(3, nil).Once()
	logger, buf := bufferLogger()

	job := NewBookingExpiryJob(handler, "", logger)
	job.clock = func() time.Time { return now }
	job.run(context.Background())

	handler.AssertExpectations(t)
	assert.Equal(t, DefaultBookingExpirySchedule, job.schedule)
	assert.Contains(t, buf.String(), "Expired stale bookings")
	assert.Contains(t, buf.String(), "count=3")
}

func TestBookingExpiryJob_RunLogsFailure(t *testing.T) {
	handler := new(MockBookingExpirer)
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("connection refused")).Once()
	logger, buf := bufferLogger()

	NewBookingExpiryJob(handler, "", logger).run(context.Background())

	assert.Contains(t, buf.String(), "Booking expiry job failed")
	assert.Contains(t, buf.String(), "component=booking_expiry_job")
}

func TestBookingExpiryJob_InvalidSchedule(t *testing.T) {
	logger, _ := bufferLogger()
	job := NewBookingExpiryJob(new(MockBookingExpirer), "every day", logger)

	require.Error(t, job.Start())
}

func TestStatsReportJob_Run(t *testing.T) {
	handler := new(MockStatsReader)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(services.DashboardStats{Today: 2, Pending: 1, Ongoing: 4, Total: 9}, nil).Once()
	logger, buf := bufferLogger()

	NewStatsReportJob(handler, logger).run(context.Background())

	handler.AssertExpectations(t)
	assert.Contains(t, buf.String(), "Order stats")
	assert.Contains(t, buf.String(), "ongoing=4")
	assert.Contains(t, buf.String(), "total=9")
}

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	logger, buf := bufferLogger()
	jm := NewJobManager(new(MockBookingExpirer), new(MockStatsReader), "", logger)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Contains(t, buf.String(), "Booking expiry job started")
	assert.Contains(t, buf.String(), "Stats report job stopped")
}

func TestJobManager_StartAllFailsOnBadSchedule(t *testing.T) {
	logger, _ := bufferLogger()
	jm := NewJobManager(new(MockBookingExpirer), new(MockStatsReader), "not a schedule", logger)

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "booking expiry job")
}
