package ports

import (
	"context"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/partner"
	"mozdelivery/internal/core/domain/model/staff"
)

// PartnerRepository stores the partner catalogue with menus.
type PartnerRepository interface {
	Add(ctx context.Context, p *partner.Partner) error
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)
	// Remove deletes a partner and its menu. Past orders keep the restaurant name they captured.
	Remove(ctx context.Context, id kernel.UUID) error
}

// UserRepository stores staff accounts.
type UserRepository interface {
	Add(ctx context.Context, u *staff.User) error
	Update(ctx context.Context, u *staff.User) error
	Get(ctx context.Context, id kernel.UUID) (*staff.User, error)
}
