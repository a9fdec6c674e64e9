package commands

import (
	"context"
	"errors"
	"fmt"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/staff"
	"mozdelivery/internal/core/domain/services"
	"mozdelivery/internal/pkg/guard"
)

var ErrToggleStaffUserStatusCommandIsNotConstructed = errors.New(
	"ToggleStaffUserStatusCommand must be created via NewToggleStaffUserStatusCommand constructor",
)

type ToggleStaffUserStatusCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewToggleStaffUserStatusCommand(userID kernel.UUID) (ToggleStaffUserStatusCommand, error) {
	if err := userID.Validate(); err != nil {
		return ToggleStaffUserStatusCommand{}, err
	}
	return ToggleStaffUserStatusCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleStaffUserStatusCommand) Validate() error {
	return c.guard.Validate(ErrToggleStaffUserStatusCommandIsNotConstructed)
}

func (c ToggleStaffUserStatusCommand) UserID() kernel.UUID {
	return c.userID
}

// ToggleStaffUserStatusCommandHandler flips a staff account between ACTIVE and INACTIVE.
type ToggleStaffUserStatusCommandHandler struct {
	uowFactory CatalogueUoWFactory
	clock      kernel.Clock
}

func NewToggleStaffUserStatusCommandHandler(uowFactory CatalogueUoWFactory, clock kernel.Clock) ToggleStaffUserStatusCommandHandler {
	return ToggleStaffUserStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the new status.
func (h *ToggleStaffUserStatusCommandHandler) Handle(ctx context.Context, cmd ToggleStaffUserStatusCommand) (staff.Status, error) {
	if err := cmd.Validate(); err != nil {
		return staff.UnknownStatus, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return staff.UnknownStatus, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return staff.UnknownStatus, err
	}

	previous := u.Status()
	status := u.ToggleStatus()
	if err = userRepo.Update(ctx, u); err != nil {
		return staff.UnknownStatus, err
	}

	if err = recordActivity(ctx, uow, h.clock, services.ActivityDraft{
		Actor:   kernel.Owner.String(),
		Action:  "User status changed",
		Details: fmt.Sprintf("%s: %s -> %s", u.Name(), previous, status),
	}); err != nil {
		return staff.UnknownStatus, err
	}

	if err = uow.Commit(ctx); err != nil {
		return staff.UnknownStatus, err
	}

	return status, nil
}
