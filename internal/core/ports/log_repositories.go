package ports

import (
	"context"

	"mozdelivery/internal/core/domain/model/activity"
	"mozdelivery/internal/core/domain/model/notification"
)

// NotificationRepository is the append-only notification log.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error
}

// ActivityRepository is the append-only audit trail.
type ActivityRepository interface {
	Add(ctx context.Context, e *activity.Entry) error
}
