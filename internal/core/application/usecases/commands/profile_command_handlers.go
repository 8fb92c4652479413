package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/profile"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// ProfileCommandHandler updates profiles. A user without a stored profile gets
// one created on first write.
type ProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

func NewProfileCommandHandler(uowFactory ProfileUoWFactory) ProfileCommandHandler {
	return ProfileCommandHandler{uowFactory: uowFactory}
}

// UpdateDetails saves the caller's own contact details.
func (h *ProfileCommandHandler) UpdateDetails(ctx context.Context, cmd UpdateProfileCommand) (*profile.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	err := h.inTx(ctx, func(uow ProfileUoW) error {
		now := time.Now()
		p, err := loadOrCreateProfile(ctx, uow.ProfileRepository(), cmd, now)
		if err != nil {
			return err
		}
		p.UpdateDetails(cmd.FullName(), cmd.Phone(), cmd.HostelName(), cmd.RoomNumber(), now)
		return uow.ProfileRepository().Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	return h.uowFactory.Create().ProfileRepository().Get(ctx, cmd.UserID())
}

// ChangeRole sets another user's role and records a role_changed activity.
func (h *ProfileCommandHandler) ChangeRole(ctx context.Context, cmd ChangeRoleCommand) (*profile.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	err := h.inTx(ctx, func(uow ProfileUoW) error {
		now := time.Now()
		p, err := uow.ProfileRepository().Get(ctx, cmd.UserID())
		if err != nil {
			return err
		}

		previous, err := p.ChangeRole(cmd.Role(), now)
		if err != nil {
			return err
		}
		if err = uow.ProfileRepository().Save(ctx, p); err != nil {
			return err
		}

		activity, err := profile.NewActivity(
			p.ID(),
			profile.ActivityRoleChanged,
			fmt.Sprintf("role changed from %s to %s by %s", previous, p.Role(), cmd.Actor()),
			now,
		)
		if err != nil {
			return err
		}
		return uow.ActivityRepository().Record(ctx, activity)
	})
	if err != nil {
		return nil, err
	}

	return h.uowFactory.Create().ProfileRepository().Get(ctx, cmd.UserID())
}

func (h *ProfileCommandHandler) inTx(ctx context.Context, fn func(uow ProfileUoW) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func loadOrCreateProfile(
	ctx context.Context,
	repo ports.ProfileRepository,
	cmd UpdateProfileCommand,
	now time.Time,
) (*profile.Profile, error) {
	p, err := repo.Get(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return profile.NewProfile(cmd.UserID(), now)
	}
	return p, err
}
