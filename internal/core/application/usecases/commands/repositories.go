// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence and a re-read of the committed state.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	StatusHistoryRepoFactory interface {
		StatusHistoryRepository() ports.StatusHistoryRepository
	}

	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	ActivityRepoFactory interface {
		ActivityRepository() ports.ActivityRepository
	}

	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// OrderUoW covers order writes together with their status history rows.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.OrderRepository().Update(ctx, o)
	//   err = uow.StatusHistoryRepository().Append(ctx, change)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StatusHistoryRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BookingUoW manages transactions for booking-only operations.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
	}

	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// ProfileUoW covers profile writes and the activity rows they produce.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
		ActivityRepoFactory
	}

	ProfileUoWFactory interface {
		Create() ProfileUoW
	}

	// BatchUoW covers batches and the orders attached to them.
	BatchUoW interface {
		TxManager
		BatchRepoFactory
		OrderRepoFactory
	}

	BatchUoWFactory interface {
		Create() BatchUoW
	}
)
