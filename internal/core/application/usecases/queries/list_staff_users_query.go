package queries

import (
	"context"
	"errors"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/staff"
	"mozdelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListStaffUsersQueryIsNotConstructed = errors.New(
	"ListStaffUsersQuery must be created via NewListStaffUsersQuery constructor",
)

type ListStaffUsersQuery struct {
	guard guard.ConstructorGuard
}

func NewListStaffUsersQuery() ListStaffUsersQuery {
	return ListStaffUsersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListStaffUsersQuery) Validate() error {
	return q.guard.Validate(ErrListStaffUsersQueryIsNotConstructed)
}

type StaffUserResponse struct {
	ID     kernel.UUID
	Name   string
	Role   kernel.Role
	Status staff.Status
	Email  string
}

type ListStaffUsersQueryHandler struct {
	db *gorm.DB
}

func NewListStaffUsersQueryHandler(db *gorm.DB) ListStaffUsersQueryHandler {
	return ListStaffUsersQueryHandler{db: db}
}

// Handle lists the team in the order accounts were created.
func (h ListStaffUsersQueryHandler) Handle(ctx context.Context, query ListStaffUsersQuery) ([]StaffUserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			role,
			status,
			email
		FROM staff_users
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]StaffUserResponse, 0)
	for rows.Next() {
		var (
			u              StaffUserResponse
			id, role, stat string
		)
		if err = rows.Scan(&id, &u.Name, &role, &stat, &u.Email); err != nil {
			return nil, err
		}
		if u.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		if u.Role, err = kernel.RoleFromString(role); err != nil {
			return nil, err
		}
		if u.Status, err = staff.StatusFromString(stat); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
