package queries

import (
	"context"
	"errors"
	"time"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/notification"
	"mozdelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery reads the notification log for one role. UnknownRole and
// OWNER both list every notification.
type ListNotificationsQuery struct {
	targetRole kernel.Role

	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(targetRole kernel.Role) (ListNotificationsQuery, error) {
	if targetRole != kernel.UnknownRole {
		if err := targetRole.Validate(); err != nil {
			return ListNotificationsQuery{}, err
		}
	}
	return ListNotificationsQuery{targetRole: targetRole, guard: guard.NewConstructorGuard()}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) TargetRole() kernel.Role {
	return q.targetRole
}

type NotificationResponse struct {
	ID         kernel.UUID
	TargetRole kernel.Role
	Title      string
	Message    string
	Severity   notification.Severity
	CreatedAt  time.Time
}

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle returns the log newest first.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			target_role,
			title,
			message,
			severity,
			created_at
		FROM notifications`
	var args []any
	if role := query.TargetRole(); role != kernel.UnknownRole && !role.ObservesAll() {
		sql += "\n\t\tWHERE target_role = ?"
		args = append(args, role.String())
	}
	sql += "\n\t\tORDER BY created_at DESC, seq DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]NotificationResponse, 0)
	for rows.Next() {
		var (
			n        NotificationResponse
			id       string
			role     string
			severity string
		)
		if err = rows.Scan(&id, &role, &n.Title, &n.Message, &severity, &n.CreatedAt); err != nil {
			return nil, err
		}
		if n.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		if n.TargetRole, err = kernel.RoleFromString(role); err != nil {
			return nil, err
		}
		if n.Severity, err = notification.SeverityFromString(severity); err != nil {
			return nil, err
		}
		n.CreatedAt = n.CreatedAt.UTC()
		notifications = append(notifications, n)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
