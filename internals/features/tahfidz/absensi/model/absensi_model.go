package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status kehadiran
const (
	StatusHadir = "Hadir"
	StatusIzin  = "Izin"
	StatusSakit = "Sakit"
	StatusAlpha = "Alpha"
)

// AbsensiModel merepresentasikan tabel absensi.
// Secara logis satu baris per (santri, tanggal), tapi skema tidak memaksa
// unik — duplikat untuk hari yang sama mungkin terjadi dan dibiarkan apa
// adanya (mengikuti skema sumber).
type AbsensiModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	IDSantri        uuid.UUID `gorm:"column:id_santri;type:uuid;not null" json:"id_santri"`
	Tanggal         time.Time `gorm:"column:tanggal;type:date;not null" json:"tanggal"`
	StatusKehadiran string    `gorm:"column:status_kehadiran;size:20;not null;default:'Hadir'" json:"status_kehadiran"`
	Keterangan      *string   `gorm:"column:keterangan;type:text" json:"keterangan,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AbsensiModel) TableName() string {
	return "absensi"
}

func (a *AbsensiModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
