package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfidzku_backend/internals/features/tahfidz/absensi/model"
)

// =========================
// Request (Create / Update)
// =========================

type AbsensiRequest struct {
	IDSantri        uuid.UUID `json:"id_santri" validate:"required"`
	Tanggal         string    `json:"tanggal" validate:"required,datetime=2006-01-02"`
	StatusKehadiran string    `json:"status_kehadiran" validate:"required,oneof=Hadir Izin Sakit Alpha"`
	Keterangan      *string   `json:"keterangan,omitempty"`
}

// =========================
// Response
// =========================

type AbsensiResponse struct {
	ID              uuid.UUID `json:"id"`
	IDSantri        uuid.UUID `json:"id_santri"`
	Tanggal         string    `json:"tanggal"`
	StatusKehadiran string    `json:"status_kehadiran"`
	Keterangan      *string   `json:"keterangan,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// =========================
// Converters
// =========================

const tanggalLayout = "2006-01-02"

func (r *AbsensiRequest) ToModel() (*model.AbsensiModel, error) {
	tgl, err := time.Parse(tanggalLayout, r.Tanggal)
	if err != nil {
		return nil, err
	}
	return &model.AbsensiModel{
		IDSantri:        r.IDSantri,
		Tanggal:         tgl,
		StatusKehadiran: r.StatusKehadiran,
		Keterangan:      r.Keterangan,
	}, nil
}

func ToAbsensiResponse(m *model.AbsensiModel) AbsensiResponse {
	return AbsensiResponse{
		ID:              m.ID,
		IDSantri:        m.IDSantri,
		Tanggal:         m.Tanggal.Format(tanggalLayout),
		StatusKehadiran: m.StatusKehadiran,
		Keterangan:      m.Keterangan,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
