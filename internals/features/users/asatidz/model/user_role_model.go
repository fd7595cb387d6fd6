package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRoleModel merepresentasikan tabel user_roles (role grant per user).
// Unik per (user_id, role) — insert kedua dengan pasangan sama di-ignore,
// jadi langkah grant pada provisioning aman diulang.
type UserRoleModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_user_roles_user_role" json:"user_id"`
	Role       string    `gorm:"column:role;size:30;not null;uniqueIndex:idx_user_roles_user_role" json:"role"`
	AssignedAt time.Time `gorm:"column:assigned_at;autoCreateTime" json:"assigned_at"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}

func (r *UserRoleModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
