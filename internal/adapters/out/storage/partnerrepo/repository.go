package partnerrepo

import (
	"context"
	"errors"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/partner"
	"mozdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartnerRepository implements ports.PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a partner with its menu.
func (r *GormPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// Get loads a partner with its menu in display order.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	err := r.db.WithContext(ctx).
		Preload("Menu", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes the partner and its menu rows.
func (r *GormPartnerRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("partner_id = ?", id.String()).Delete(&MenuItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.String()).Delete(&PartnerDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", id.String())
	}

	return nil
}
