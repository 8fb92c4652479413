package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command. Units are not
// shared between goroutines.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one store transaction. Callers Begin, defer Rollback and
// Commit on success. The deferred Rollback then fails harmlessly and its error
// is ignored.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	// Repositories share the transaction opened by Begin. Before Begin they
	// read and write outside any transaction.
	OrderRepository() OrderRepository
	StatusHistoryRepository() StatusHistoryRepository
	BookingRepository() BookingRepository
	ProfileRepository() ProfileRepository
	ActivityRepository() ActivityRepository
	BatchRepository() BatchRepository
}
