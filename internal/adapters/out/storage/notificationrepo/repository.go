package notificationrepo

import (
	"context"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

// GormNotificationRepository implements ports.NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a notification to the log.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(n.ID(), n)
	return nil
}
