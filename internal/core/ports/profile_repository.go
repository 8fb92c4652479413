package ports

import (
	"context"

	"laundry/internal/core/domain/model/batch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/profile"
)

// ProfileRepository defines the persistence contract for profiles.
type ProfileRepository interface {
	// Save inserts the profile or overwrites the stored row.
	Save(ctx context.Context, aggregate *profile.Profile) error

	// Get returns errs.ErrObjectNotFound when the user has no profile yet.
	Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error)
}

// ActivityRepository appends user_activity rows.
type ActivityRepository interface {
	Record(ctx context.Context, activity profile.Activity) error
}

// BatchRepository defines the persistence contract for wash batches.
type BatchRepository interface {
	Add(ctx context.Context, aggregate *batch.Batch) error
	Update(ctx context.Context, aggregate *batch.Batch) error
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)
}
