package commands

import (
	"context"
	"errors"
	"fmt"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/services"
	"mozdelivery/internal/pkg/guard"
)

var ErrRemovePartnerCommandIsNotConstructed = errors.New(
	"RemovePartnerCommand must be created via NewRemovePartnerCommand constructor",
)

type RemovePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemovePartnerCommand(partnerID kernel.UUID) (RemovePartnerCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return RemovePartnerCommand{}, err
	}
	return RemovePartnerCommand{partnerID: partnerID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemovePartnerCommand) Validate() error {
	return c.guard.Validate(ErrRemovePartnerCommandIsNotConstructed)
}

func (c RemovePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// RemovePartnerCommandHandler drops a partner from the catalogue. Orders placed with it
// keep the restaurant name they captured.
type RemovePartnerCommandHandler struct {
	uowFactory CatalogueUoWFactory
	clock      kernel.Clock
}

func NewRemovePartnerCommandHandler(uowFactory CatalogueUoWFactory, clock kernel.Clock) RemovePartnerCommandHandler {
	return RemovePartnerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *RemovePartnerCommandHandler) Handle(ctx context.Context, cmd RemovePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	p, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = partnerRepo.Remove(ctx, p.ID()); err != nil {
		return err
	}

	if err = recordActivity(ctx, uow, h.clock, services.ActivityDraft{
		Actor:   kernel.Owner.String(),
		Action:  "Partner removed",
		Details: fmt.Sprintf("Removed %s", p.Name()),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
