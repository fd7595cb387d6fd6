package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfidzku_backend/internals/features/tahfidz/setoran/model"
)

// =========================
// Request (Create / Update)
// =========================

// id_asatidz TIDAK diterima dari body — evaluator selalu distempel dari
// token user yang sedang login, diteruskan eksplisit oleh controller.
type SetoranRequest struct {
	IDSantri        uuid.UUID `json:"id_santri" validate:"required"`
	TanggalSetoran  string    `json:"tanggal_setoran" validate:"required,datetime=2006-01-02"`
	Juz             int       `json:"juz" validate:"required,min=1,max=30"`
	AyatDari        int       `json:"ayat_dari" validate:"required,min=1"`
	AyatSampai      int       `json:"ayat_sampai" validate:"required,min=1,gtefield=AyatDari"`
	NilaiKelancaran int       `json:"nilai_kelancaran" validate:"min=0,max=100"`
	Status          string    `json:"status" validate:"required,oneof=Lancar Ulang 'Tidak Lancar'"`
	Catatan         *string   `json:"catatan,omitempty"`
}

// =========================
// Response
// =========================

type SetoranResponse struct {
	ID              uuid.UUID `json:"id"`
	IDSantri        uuid.UUID `json:"id_santri"`
	IDAsatidz       uuid.UUID `json:"id_asatidz"`
	TanggalSetoran  string    `json:"tanggal_setoran"`
	Juz             int       `json:"juz"`
	AyatDari        int       `json:"ayat_dari"`
	AyatSampai      int       `json:"ayat_sampai"`
	NilaiKelancaran int       `json:"nilai_kelancaran"`
	Status          string    `json:"status"`
	Catatan         *string   `json:"catatan,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// =========================
// Converters
// =========================

const tanggalLayout = "2006-01-02"

// ToModel: evaluatorID datang dari token (explicit context passing).
func (r *SetoranRequest) ToModel(evaluatorID uuid.UUID) (*model.SetoranModel, error) {
	tgl, err := time.Parse(tanggalLayout, r.TanggalSetoran)
	if err != nil {
		return nil, err
	}
	return &model.SetoranModel{
		IDSantri:        r.IDSantri,
		IDAsatidz:       evaluatorID,
		TanggalSetoran:  tgl,
		Juz:             r.Juz,
		AyatDari:        r.AyatDari,
		AyatSampai:      r.AyatSampai,
		NilaiKelancaran: r.NilaiKelancaran,
		Status:          r.Status,
		Catatan:         r.Catatan,
	}, nil
}

func ToSetoranResponse(m *model.SetoranModel) SetoranResponse {
	return SetoranResponse{
		ID:              m.ID,
		IDSantri:        m.IDSantri,
		IDAsatidz:       m.IDAsatidz,
		TanggalSetoran:  m.TanggalSetoran.Format(tanggalLayout),
		Juz:             m.Juz,
		AyatDari:        m.AyatDari,
		AyatSampai:      m.AyatSampai,
		NilaiKelancaran: m.NilaiKelancaran,
		Status:          m.Status,
		Catatan:         m.Catatan,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
