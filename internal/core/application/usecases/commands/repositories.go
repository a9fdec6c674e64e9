// Package commands contains business operations that modify system state.
// Every command follows the same pattern: validation, transaction, persistence of the
// aggregate plus its notifications and activity entry, commit, and only then surfacing
// toasts to the session.
package commands

import (
	"context"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/notification"
	"mozdelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	ActivityRepoFactory interface {
		ActivityRepository() ports.ActivityRepository
	}

	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW covers order lifecycle commands: the ledger row plus the two logs.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   // ... apply transition, update, record notifications and activity
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
		ActivityRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogueUoW covers the owner's partner and staff management.
	CatalogueUoW interface {
		TxManager
		PartnerRepoFactory
		UserRepoFactory
		ActivityRepoFactory
	}

	CatalogueUoWFactory interface {
		Create() CatalogueUoW
	}
)

// Session interfaces are implemented by session.Session.
type (
	// ToastSurface offers committed notifications to the view.
	ToastSurface interface {
		Surface(n *notification.Notification) bool
	}

	RoleSwitcher interface {
		SwitchRole(role kernel.Role) (kernel.Role, error)
	}

	ToastDismisser interface {
		Dismiss() bool
		DismissExpired() bool
	}
)

// OrderUoWFactoryFunc adapts a plain function to OrderUoWFactory.
type OrderUoWFactoryFunc func() OrderUoW

func (f OrderUoWFactoryFunc) Create() OrderUoW {
	return f()
}

// CatalogueUoWFactoryFunc adapts a plain function to CatalogueUoWFactory.
type CatalogueUoWFactoryFunc func() CatalogueUoW

func (f CatalogueUoWFactoryFunc) Create() CatalogueUoW {
	return f()
}
