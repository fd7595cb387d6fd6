package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status hasil setoran
const (
	StatusLancar      = "Lancar"
	StatusUlang       = "Ulang"
	StatusTidakLancar = "Tidak Lancar"
)

// SetoranModel merepresentasikan tabel setoran (log hafalan, append-mostly).
// Sekali tersimpan baris dianggap observasi final — hanya berubah lewat
// koreksi eksplisit user. id_asatidz = evaluator saat setoran dinilai;
// TIDAK di-update saat asatidz dinonaktifkan.
type SetoranModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	IDSantri        uuid.UUID `gorm:"column:id_santri;type:uuid;not null" json:"id_santri"`
	IDAsatidz       uuid.UUID `gorm:"column:id_asatidz;type:uuid;not null" json:"id_asatidz"`
	TanggalSetoran  time.Time `gorm:"column:tanggal_setoran;type:date;not null" json:"tanggal_setoran"`
	Juz             int       `gorm:"column:juz;not null" json:"juz"`
	AyatDari        int       `gorm:"column:ayat_dari;not null" json:"ayat_dari"`
	AyatSampai      int       `gorm:"column:ayat_sampai;not null" json:"ayat_sampai"`
	NilaiKelancaran int       `gorm:"column:nilai_kelancaran;not null" json:"nilai_kelancaran"`
	Status          string    `gorm:"column:status;size:20;not null;default:'Lancar'" json:"status"`
	Catatan         *string   `gorm:"column:catatan;type:text" json:"catatan,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SetoranModel) TableName() string {
	return "setoran"
}

func (s *SetoranModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
