package profile

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// Activity types written to user_activity.
const (
	ActivitySignedIn    = "signed_in"
	ActivitySignedOut   = "signed_out"
	ActivityRoleChanged = "role_changed"
)

// Activity is one append-only user_activity row.
type Activity struct {
	id           kernel.UUID
	userID       kernel.UUID
	activityType string
	description  string
	createdAt    time.Time
}

func NewActivity(userID kernel.UUID, activityType, description string, now time.Time) (Activity, error) {
	activityType = strings.TrimSpace(activityType)
	var typeErr error
	if activityType == "" {
		typeErr = errs.NewValueIsRequiredError("activity type")
	}
	if err := errors.Join(userID.Validate(), typeErr); err != nil {
		return Activity{}, err
	}
	return Activity{
		id:           kernel.NewUUID(),
		userID:       userID,
		activityType: activityType,
		description:  description,
		createdAt:    now,
	}, nil
}

func (a Activity) ID() kernel.UUID { return a.id }
func (a Activity) UserID() kernel.UUID { return a.userID }
func (a Activity) Type() string { return a.activityType }
func (a Activity) Description() string { return a.description }
func (a Activity) CreatedAt() time.Time { return a.createdAt }
