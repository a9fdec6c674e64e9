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

var ErrAddStaffUserCommandIsNotConstructed = errors.New(
	"AddStaffUserCommand must be created via NewAddStaffUserCommand constructor",
)

type AddStaffUserCommand struct { //nolint:recvcheck //using for validation
	name  string
	role  kernel.Role
	email string

	guard guard.ConstructorGuard
}

func NewAddStaffUserCommand(name string, role string, email string) (AddStaffUserCommand, error) {
	parsed, err := kernel.RoleFromString(role)
	if err != nil {
		return AddStaffUserCommand{}, err
	}

	if _, err = staff.NewUser(kernel.NewUUID(), name, parsed, email); err != nil {
		return AddStaffUserCommand{}, err
	}

	return AddStaffUserCommand{
		name:  name,
		role:  parsed,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AddStaffUserCommand) Validate() error {
	return c.guard.Validate(ErrAddStaffUserCommandIsNotConstructed)
}

type AddStaffUserCommandHandler struct {
	uowFactory CatalogueUoWFactory
	clock      kernel.Clock
}

func NewAddStaffUserCommandHandler(uowFactory CatalogueUoWFactory, clock kernel.Clock) AddStaffUserCommandHandler {
	return AddStaffUserCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle creates an ACTIVE staff account.
func (h *AddStaffUserCommandHandler) Handle(ctx context.Context, cmd AddStaffUserCommand) (*staff.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u, err := staff.NewUser(kernel.NewUUID(), cmd.name, cmd.role, cmd.email)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return nil, err
	}

	if err = recordActivity(ctx, uow, h.clock, services.ActivityDraft{
		Actor:   kernel.Owner.String(),
		Action:  "User added",
		Details: fmt.Sprintf("Added %s as %s", u.Name(), u.Role()),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
