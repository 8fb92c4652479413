package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/profile"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// ProfileReader loads the profile that carries the user's role.
type ProfileReader interface {
	Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error)
}

// Manager opens sessions. It is built once at start-up and attaches the same
// observers to every session it opens.
type Manager struct {
	profiles  ProfileReader
	observers []Observer
	clock     func() time.Time
}

// NewManager creates a manager; observers are attached to every opened session.
func NewManager(profiles ProfileReader, observers ...Observer) *Manager {
	return &Manager{profiles: profiles, observers: observers, clock: time.Now}
}

// Open resolves the role of userID and returns the resolved session. A user
// without a profile row is a customer.
func (m *Manager) Open(ctx context.Context, userID kernel.UUID) (*Context, error) {
	role, err := m.Role(ctx, userID)
	if err != nil {
		return nil, err
	}

	c := New()
	for _, o := range m.observers {
		c.Subscribe(o)
	}

	c.Resolve(ctx, userID, role, m.clock())
	return c, nil
}

// SignOut ends the session of userID. Observers only see the sign-out.
func (m *Manager) SignOut(ctx context.Context, userID kernel.UUID) error {
	role, err := m.Role(ctx, userID)
	if err != nil {
		return err
	}

	c := New()
	c.Resolve(ctx, userID, role, m.clock())
	for _, o := range m.observers {
		c.Subscribe(o)
	}

	c.SignOut(ctx, m.clock())
	return nil
}

// Role reads the role of userID without opening a session.
func (m *Manager) Role(ctx context.Context, userID kernel.UUID) (profile.Role, error) {
	if err := userID.Validate(); err != nil {
		return profile.UnknownRole, err
	}

	p, err := m.profiles.Get(ctx, userID)
	switch {
	case err == nil:
		return p.Role(), nil
	case errors.Is(err, errs.ErrObjectNotFound):
		return profile.Customer, nil
	default:
		return profile.UnknownRole, fmt.Errorf("resolve session role: %w", err)
	}
}

// LoggingObserver writes one structured line per session event.
func LoggingObserver(logger *slog.Logger) Observer {
	logger = logger.With("component", "session")
	return func(ctx context.Context, event Event) {
		switch event.Kind {
		case EventResolved:
			logger.InfoContext(ctx, "Session resolved",
				"user_id", event.Current.UserID.String(),
				"role", event.Current.Role.String())
		case EventSignedOut:
			logger.InfoContext(ctx, "Session signed out", "user_id", event.Previous.UserID.String())
		}
	}
}

// ActivityObserver appends a user_activity row per session event. Write
// failures are logged and never block the session.
func ActivityObserver(activities ports.ActivityRepository, logger *slog.Logger) Observer {
	logger = logger.With("component", "session_activity")
	return func(ctx context.Context, event Event) {
		var (
			userID       kernel.UUID
			activityType string
			description  string
		)
		switch event.Kind {
		case EventResolved:
			userID = event.Current.UserID
			activityType = profile.ActivitySignedIn
			description = "signed in as " + event.Current.Role.String()
		case EventSignedOut:
			userID = event.Previous.UserID
			activityType = profile.ActivitySignedOut
			description = "signed out"
		default:
			return
		}

		activity, err := profile.NewActivity(userID, activityType, description, event.Current.ChangedAt)
		if err != nil {
			logger.WarnContext(ctx, "Skipping session activity", "error", err)
			return
		}
		if err = activities.Record(ctx, activity); err != nil {
			logger.ErrorContext(ctx, "Failed to record session activity", "error", err)
		}
	}
}
