// Package activityrepo persists the append-only activity log.
package activityrepo

import (
	"time"

	"mozdelivery/internal/core/domain/model/activity"
)

type EntryDTO struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement"`
	ID        string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	Actor     string    `gorm:"type:varchar(64);not null"`
	Action    string    `gorm:"type:varchar(128);not null"`
	Details   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

func (EntryDTO) TableName() string {
	return "activity_log"
}

func fromDomain(e *activity.Entry) EntryDTO {
	return EntryDTO{
		ID:        e.ID().String(),
		Actor:     e.Actor(),
		Action:    e.Action(),
		Details:   e.Details(),
		CreatedAt: e.CreatedAt().UTC(),
	}
}
