package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfidzku_backend/internals/features/tahfidz/santri/model"
)

// =========================
// Request (Create / Update)
// =========================

type SantriRequest struct {
	NamaSantri string     `json:"nama_santri" validate:"required,min=3,max=100"`
	NIS        string     `json:"nis" validate:"required,max=30"`
	Status     string     `json:"status" validate:"omitempty,oneof=Aktif Nonaktif"`
	IDHalaqoh  *uuid.UUID `json:"id_halaqoh,omitempty"`
}

// =========================
// Response
// =========================

type SantriResponse struct {
	ID         uuid.UUID  `json:"id"`
	NamaSantri string     `json:"nama_santri"`
	NIS        string     `json:"nis"`
	Status     string     `json:"status"`
	IDHalaqoh  *uuid.UUID `json:"id_halaqoh,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// =========================
// Converters
// =========================

func (r *SantriRequest) ToModel() *model.SantriModel {
	status := r.Status
	if status == "" {
		status = model.StatusAktif
	}
	return &model.SantriModel{
		NamaSantri: r.NamaSantri,
		NIS:        r.NIS,
		Status:     status,
		IDHalaqoh:  r.IDHalaqoh,
	}
}

func ToSantriResponse(m *model.SantriModel) SantriResponse {
	return SantriResponse{
		ID:         m.ID,
		NamaSantri: m.NamaSantri,
		NIS:        m.NIS,
		Status:     m.Status,
		IDHalaqoh:  m.IDHalaqoh,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
