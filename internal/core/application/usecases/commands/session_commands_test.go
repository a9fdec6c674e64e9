package commands_test

import (
	"testing"

	"mozdelivery/internal/core/application/usecases/commands"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitchRoleCommandHandler_Handle(t *testing.T) {
	t.Parallel()

	session := &MockSession{}
	session.On("SwitchRole", kernel.Driver).Return(kernel.Customer, nil).Once()

	cmd, err := commands.NewSwitchRoleCommand("driver")
	require.NoError(t, err)

	handler := commands.NewSwitchRoleCommandHandler(session)
	previous, err := handler.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.Equal(t, kernel.Customer, previous)
	session.AssertExpectations(t)
}

func TestNewSwitchRoleCommand_UnknownRole(t *testing.T) {
	t.Parallel()

	_, err := commands.NewSwitchRoleCommand("chef")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	handler := commands.NewSwitchRoleCommandHandler(&MockSession{})
	_, err = handler.Handle(t.Context(), commands.SwitchRoleCommand{})
	require.ErrorIs(t, err, commands.ErrSwitchRoleCommandIsNotConstructed)
}

func TestDismissToastCommandHandlers(t *testing.T) {
	t.Parallel()

	session := &MockSession{}
	session.On("Dismiss").Return(true).Once()
	session.On("DismissExpired").Return(false).Once()

	dismiss := commands.NewDismissToastCommandHandler(session)
	assert.True(t, dismiss.Handle(t.Context()))

	expire := commands.NewDismissExpiredToastCommandHandler(session)
	assert.False(t, expire.Handle(t.Context()))

	session.AssertExpectations(t)
}
