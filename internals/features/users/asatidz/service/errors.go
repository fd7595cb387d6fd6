package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

/* ==========================
   Error kinds provisioning
========================== */

var (
	// ErrIdentityConflict: email sudah terdaftar di identity store.
	ErrIdentityConflict = errors.New("email sudah terdaftar")

	// ErrIdentityInvalid: input melanggar kebijakan (mis. password < 6 karakter).
	ErrIdentityInvalid = errors.New("password minimal 6 karakter")

	// ErrNotFound: operasi menunjuk id yang tidak punya profil.
	ErrNotFound = errors.New("profil asatidz tidak ditemukan")

	// ErrStorage: operasi storage gagal karena sebab di luar kendali service
	// (koneksi putus, timeout, dsb). Layak di-retry dengan backoff.
	ErrStorage = errors.New("operasi storage gagal")
)

// Nama langkah provisioning, dibawa ProvisioningIncompleteError
// supaya operator tahu dari mana repair harus melanjutkan.
const (
	StepRoleGrant     = "role_grant"
	StepProfileUpsert = "profile_upsert"
)

// ProvisioningIncompleteError: identity sudah terlanjur dibuat tapi langkah
// berikutnya gagal. Identity TIDAK di-rollback (tidak ada primitive delete
// yang dijamin) — state parsial ini recoverable lewat RepairAsatidz dengan
// UserID yang dibawa error ini. Kedua langkah lanjutan idempoten, jadi repair
// aman diulang berapa kali pun.
type ProvisioningIncompleteError struct {
	UserID uuid.UUID
	Step   string
	Err    error
}

func (e *ProvisioningIncompleteError) Error() string {
	return fmt.Sprintf("provisioning belum selesai (step %s gagal) untuk user %s: %v", e.Step, e.UserID, e.Err)
}

func (e *ProvisioningIncompleteError) Unwrap() error {
	return e.Err
}
