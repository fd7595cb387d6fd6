package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel merepresentasikan tabel profiles.
// Primary key = id identity (users.id); satu profil per identity.
// aktif=false menandai asatidz yang dinonaktifkan (soft delete) —
// baris tidak pernah dihapus supaya referensi evaluator di setoran tetap valid.
type ProfileModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	NamaLengkap string    `gorm:"column:nama_lengkap;size:100;not null" json:"nama_lengkap"`
	Username    string    `gorm:"column:username;size:50;not null" json:"username"`
	Email       string    `gorm:"column:email;size:255;not null" json:"email"`
	NoHP        *string   `gorm:"column:no_hp;size:20" json:"no_hp,omitempty"`
	Aktif       bool      `gorm:"column:aktif;not null;default:true" json:"aktif"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
