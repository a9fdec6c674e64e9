package queries

import (
	"context"
	"errors"
	"time"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListActivityLogQueryIsNotConstructed = errors.New(
	"ListActivityLogQuery must be created via NewListActivityLogQuery constructor",
)

// ListActivityLogQuery reads the audit trail. A positive limit keeps only the most
// recent entries.
type ListActivityLogQuery struct {
	limit int

	guard guard.ConstructorGuard
}

func NewListActivityLogQuery(limit int) ListActivityLogQuery {
	if limit < 0 {
		limit = 0
	}
	return ListActivityLogQuery{limit: limit, guard: guard.NewConstructorGuard()}
}

func (q ListActivityLogQuery) Validate() error {
	return q.guard.Validate(ErrListActivityLogQueryIsNotConstructed)
}

type ActivityEntryResponse struct {
	ID        kernel.UUID
	Actor     string
	Action    string
	Details   string
	CreatedAt time.Time
}

type ListActivityLogQueryHandler struct {
	db *gorm.DB
}

func NewListActivityLogQueryHandler(db *gorm.DB) ListActivityLogQueryHandler {
	return ListActivityLogQueryHandler{db: db}
}

func (h ListActivityLogQueryHandler) Handle(
	ctx context.Context,
	query ListActivityLogQuery,
) ([]ActivityEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			actor,
			action,
			details,
			created_at
		FROM activity_log
		ORDER BY created_at DESC, seq DESC`
	var args []any
	if query.limit > 0 {
		sql += "\n\t\tLIMIT ?"
		args = append(args, query.limit)
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]ActivityEntryResponse, 0)
	for rows.Next() {
		var (
			e  ActivityEntryResponse
			id string
		)
		if err = rows.Scan(&id, &e.Actor, &e.Action, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		if e.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
