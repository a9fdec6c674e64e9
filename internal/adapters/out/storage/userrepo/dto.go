// Package userrepo persists staff accounts.
package userrepo

import (
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/staff"
)

type UserDTO struct {
	Seq    uint64 `gorm:"primaryKey;autoIncrement"`
	ID     string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Name   string `gorm:"type:varchar(255);not null"`
	Role   string `gorm:"type:varchar(16);not null"`
	Status string `gorm:"type:varchar(16);not null"`
	Email  string `gorm:"type:varchar(255);not null"`
}

func (UserDTO) TableName() string {
	return "staff_users"
}

func fromDomain(u *staff.User) UserDTO {
	return UserDTO{
		ID:     u.ID().String(),
		Name:   u.Name(),
		Role:   u.Role().String(),
		Status: u.Status().String(),
		Email:  u.Email(),
	}
}

func toDomain(dto UserDTO) (*staff.User, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}
	status, err := staff.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	return staff.RestoreUser(id, dto.Name, role, status, dto.Email)
}
