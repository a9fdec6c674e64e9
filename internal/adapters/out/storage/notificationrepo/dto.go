// Package notificationrepo persists the append-only notification log.
package notificationrepo

import (
	"time"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/notification"
)

type NotificationDTO struct {
	Seq        uint64    `gorm:"primaryKey;autoIncrement"`
	ID         string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	TargetRole string    `gorm:"type:varchar(16);not null;index"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Message    string    `gorm:"type:text;not null"`
	Severity   string    `gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:         n.ID().String(),
		TargetRole: n.TargetRole().String(),
		Title:      n.Title(),
		Message:    n.Message(),
		Severity:   n.Severity().String(),
		CreatedAt:  n.CreatedAt().UTC(),
	}
}

// ToDomain rebuilds a notification from a stored row.
func ToDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	role, err := kernel.RoleFromString(dto.TargetRole)
	if err != nil {
		return nil, err
	}
	severity, err := notification.SeverityFromString(dto.Severity)
	if err != nil {
		return nil, err
	}
	return notification.NewNotification(id, role, dto.Title, dto.Message, severity, dto.CreatedAt.UTC())
}
