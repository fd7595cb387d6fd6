package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HalaqohModel merepresentasikan tabel halaqoh (kelompok belajar tahfidz).
// id_asatidz adalah back reference lemah ke profiles — menonaktifkan asatidz
// TIDAK menghapus/mengubah baris halaqoh; resolve-nya di read path.
type HalaqohModel struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	NamaHalaqoh string     `gorm:"column:nama_halaqoh;size:100;not null" json:"nama_halaqoh"`
	IDAsatidz   *uuid.UUID `gorm:"column:id_asatidz;type:uuid" json:"id_asatidz,omitempty"`
	Tingkat     *string    `gorm:"column:tingkat;size:50" json:"tingkat,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (HalaqohModel) TableName() string {
	return "halaqoh"
}

func (h *HalaqohModel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
