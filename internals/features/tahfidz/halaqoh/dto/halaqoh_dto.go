package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfidzku_backend/internals/features/tahfidz/halaqoh/model"
)

// =========================
// Request (Create / Update)
// =========================

type HalaqohRequest struct {
	NamaHalaqoh string     `json:"nama_halaqoh" validate:"required,min=3,max=100"`
	IDAsatidz   *uuid.UUID `json:"id_asatidz,omitempty"`
	Tingkat     *string    `json:"tingkat,omitempty" validate:"omitempty,max=50"`
}

// =========================
// Response
// =========================

type HalaqohResponse struct {
	ID          uuid.UUID  `json:"id"`
	NamaHalaqoh string     `json:"nama_halaqoh"`
	IDAsatidz   *uuid.UUID `json:"id_asatidz,omitempty"`
	Tingkat     *string    `json:"tingkat,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// =========================
// Converters
// =========================

func (r *HalaqohRequest) ToModel() *model.HalaqohModel {
	return &model.HalaqohModel{
		NamaHalaqoh: r.NamaHalaqoh,
		IDAsatidz:   r.IDAsatidz,
		Tingkat:     r.Tingkat,
	}
}

func ToHalaqohResponse(m *model.HalaqohModel) HalaqohResponse {
	return HalaqohResponse{
		ID:          m.ID,
		NamaHalaqoh: m.NamaHalaqoh,
		IDAsatidz:   m.IDAsatidz,
		Tingkat:     m.Tingkat,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
