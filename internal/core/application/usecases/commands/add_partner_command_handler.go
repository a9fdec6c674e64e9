package commands

import (
	"context"
	"fmt"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/partner"
	"mozdelivery/internal/core/domain/services"
)

type AddPartnerCommandHandler struct {
	uowFactory CatalogueUoWFactory
	clock      kernel.Clock
}

func NewAddPartnerCommandHandler(uowFactory CatalogueUoWFactory, clock kernel.Clock) AddPartnerCommandHandler {
	return AddPartnerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores the partner and logs it on behalf of the owner.
func (h *AddPartnerCommandHandler) Handle(ctx context.Context, cmd AddPartnerCommand) (*partner.Partner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := partner.NewPartner(kernel.NewUUID(), cmd.Profile(), cmd.Menu())
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

	if err = uow.PartnerRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = recordActivity(ctx, uow, h.clock, services.ActivityDraft{
		Actor:   kernel.Owner.String(),
		Action:  "Partner added",
		Details: fmt.Sprintf("New %s: %s", p.Profile().Kind, p.Name()),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
