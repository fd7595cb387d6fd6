package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status santri
const (
	StatusAktif    = "Aktif"
	StatusNonaktif = "Nonaktif"
)

// SantriModel merepresentasikan tabel santri.
// id_halaqoh back reference lemah — menghapus halaqoh tidak menghapus santri.
type SantriModel struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	NamaSantri string     `gorm:"column:nama_santri;size:100;not null" json:"nama_santri"`
	NIS        string     `gorm:"column:nis;size:30;not null" json:"nis"`
	Status     string     `gorm:"column:status;size:20;not null;default:'Aktif'" json:"status"`
	IDHalaqoh  *uuid.UUID `gorm:"column:id_halaqoh;type:uuid" json:"id_halaqoh,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SantriModel) TableName() string {
	return "santri"
}

func (s *SantriModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = StatusAktif
	}
	return nil
}
