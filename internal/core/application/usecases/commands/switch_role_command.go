package commands

import (
	"context"
	"errors"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/guard"
)

var ErrSwitchRoleCommandIsNotConstructed = errors.New(
	"SwitchRoleCommand must be created via NewSwitchRoleCommand constructor",
)

// SwitchRoleCommand is the "login" button: it changes which view is acting.
// No credentials are involved.
type SwitchRoleCommand struct { //nolint:recvcheck //using for validation
	role kernel.Role

	guard guard.ConstructorGuard
}

func NewSwitchRoleCommand(role string) (SwitchRoleCommand, error) {
	parsed, err := kernel.RoleFromString(role)
	if err != nil {
		return SwitchRoleCommand{}, err
	}

	return SwitchRoleCommand{
		role:  parsed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SwitchRoleCommand) Validate() error {
	return c.guard.Validate(ErrSwitchRoleCommandIsNotConstructed)
}

func (c SwitchRoleCommand) Role() kernel.Role {
	return c.role
}

type SwitchRoleCommandHandler struct {
	session RoleSwitcher
}

func NewSwitchRoleCommandHandler(session RoleSwitcher) SwitchRoleCommandHandler {
	return SwitchRoleCommandHandler{session: session}
}

// Handle returns the role that was active before the switch.
func (h *SwitchRoleCommandHandler) Handle(_ context.Context, cmd SwitchRoleCommand) (kernel.Role, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UnknownRole, err
	}
	return h.session.SwitchRole(cmd.Role())
}
