package activityrepo

import (
	"context"

	"mozdelivery/internal/core/domain/model/activity"
	"mozdelivery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormActivityRepository implements ports.ActivityRepository using GORM.
type GormActivityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormActivityRepository(db *gorm.DB, tracker aggregateTracker) *GormActivityRepository {
	return &GormActivityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends an entry to the activity log.
func (r *GormActivityRepository) Add(ctx context.Context, e *activity.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := fromDomain(e)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(e.ID(), e)
	return nil
}
