package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfidzku_backend/internals/features/users/asatidz/model"
	"tahfidzku_backend/internals/features/users/asatidz/service"
)

// =========================
// Request (Create / Repair / Update)
// =========================

type CreateAsatidzRequest struct {
	NamaLengkap string `json:"nama_lengkap" validate:"required,min=3,max=100"`
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	NoHP        string `json:"no_hp" validate:"omitempty,max=20"`
	Password    string `json:"password" validate:"required,min=6"`
}

type UpdateAsatidzRequest struct {
	NamaLengkap string `json:"nama_lengkap" validate:"required,min=3,max=100"`
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	NoHP        string `json:"no_hp" validate:"omitempty,max=20"`
}

// =========================
// Response
// =========================

type AsatidzResponse struct {
	ID          uuid.UUID `json:"id"`
	NamaLengkap string    `json:"nama_lengkap"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	NoHP        *string   `json:"no_hp,omitempty"`
	Aktif       bool      `json:"aktif"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// =========================
// Converters
// =========================

func (r *CreateAsatidzRequest) ToInput() service.AsatidzInput {
	return service.AsatidzInput{
		NamaLengkap: r.NamaLengkap,
		Username:    r.Username,
		Email:       r.Email,
		NoHP:        r.NoHP,
		Password:    r.Password,
	}
}

func (r *UpdateAsatidzRequest) ToInput() service.ProfileUpdateInput {
	return service.ProfileUpdateInput{
		NamaLengkap: r.NamaLengkap,
		Username:    r.Username,
		Email:       r.Email,
		NoHP:        r.NoHP,
	}
}

func ToAsatidzResponse(m *model.ProfileModel) AsatidzResponse {
	return AsatidzResponse{
		ID:          m.ID,
		NamaLengkap: m.NamaLengkap,
		Username:    m.Username,
		Email:       m.Email,
		NoHP:        m.NoHP,
		Aktif:       m.Aktif,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
