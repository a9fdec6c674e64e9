package userrepo

import (
	"context"
	"errors"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/staff"
	"mozdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormUserRepository) Add(ctx context.Context, u *staff.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(u.ID(), u)
	return nil
}

// Update rewrites every column except the id.
func (r *GormUserRepository) Update(ctx context.Context, u *staff.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":   dto.Name,
			"role":   dto.Role,
			"status": dto.Status,
			"email":  dto.Email,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", dto.ID)
	}

	r.tracker.TrackAggregate(u.ID(), u)
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*staff.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
