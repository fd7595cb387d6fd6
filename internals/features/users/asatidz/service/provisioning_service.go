package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/users/asatidz/model"
)

/* ==========================
   Provisioning Coordinator
========================== */

// AsatidzInput: field yang diisi admin saat membuat akun asatidz baru.
type AsatidzInput struct {
	NamaLengkap string
	Username    string
	Email       string
	NoHP        string
	Password    string
}

// ProfileUpdateInput: field yang boleh diubah lewat UpdateAsatidz.
type ProfileUpdateInput struct {
	NamaLengkap string
	Username    string
	Email       string
	NoHP        string
}

// ProvisioningService membuat akun asatidz sebagai satu unit logis dari tiga
// tulisan terpisah: identity (users), role grant (user_roles), dan profil
// (profiles). Storage tidak punya transaksi lintas tabel, jadi urutannya
// disusun sebagai saga: langkah yang tidak bisa diulang (create identity)
// jalan duluan, dua langkah sisanya idempoten dan bisa di-replay lewat
// RepairAsatidz kalau ada yang gagal di tengah.
type ProvisioningService struct {
	db       *gorm.DB
	identity IdentityStore
}

func NewProvisioningService(db *gorm.DB) *ProvisioningService {
	return &ProvisioningService{db: db, identity: NewDBIdentityStore(db)}
}

// NewProvisioningServiceWithIdentity dipakai kalau identity store-nya bukan
// tabel users lokal (mis. provider hosted).
func NewProvisioningServiceWithIdentity(db *gorm.DB, identity IdentityStore) *ProvisioningService {
	return &ProvisioningService{db: db, identity: identity}
}

// ProvisionAsatidz menjalankan tiga langkah berurutan:
//  1. create identity (email+password) → dapat id; gagal = berhenti total,
//     belum ada state parsial.
//  2. insert role grant "Asatidz" (insert-or-ignore).
//  3. upsert baris profiles dengan key = id identity, aktif=true.
//
// Gagal di langkah 2/3 TIDAK menghapus identity yang sudah dibuat —
// pemanggil menerima ProvisioningIncompleteError berisi id parsial dan
// menyelesaikannya lewat RepairAsatidz.
func (s *ProvisioningService) ProvisionAsatidz(ctx context.Context, in AsatidzInput) (uuid.UUID, error) {
	id, err := s.identity.CreateIdentity(ctx, in.Email, in.Password, IdentityMetadata{
		NamaLengkap: in.NamaLengkap,
		Username:    in.Username,
	})
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.grantAsatidzRole(ctx, id); err != nil {
		return uuid.Nil, &ProvisioningIncompleteError{UserID: id, Step: StepRoleGrant, Err: err}
	}

	if err := s.upsertProfile(ctx, id, in.NamaLengkap, in.Username, in.Email, in.NoHP); err != nil {
		return uuid.Nil, &ProvisioningIncompleteError{UserID: id, Step: StepProfileUpsert, Err: err}
	}

	return id, nil
}

// RepairAsatidz me-replay langkah 2–3 untuk identity yang sudah ada.
// Idempoten: dijalankan dua kali hasilnya sama dengan sekali.
// Dipakai operator setelah ProvisionAsatidz putus di tengah (atau setelah
// retry ProvisionAsatidz gagal dengan ErrIdentityConflict karena email
// sekarang sudah terdaftar).
func (s *ProvisioningService) RepairAsatidz(ctx context.Context, id uuid.UUID, in ProfileUpdateInput) error {
	if err := s.grantAsatidzRole(ctx, id); err != nil {
		return &ProvisioningIncompleteError{UserID: id, Step: StepRoleGrant, Err: err}
	}
	if err := s.upsertProfile(ctx, id, in.NamaLengkap, in.Username, in.Email, in.NoHP); err != nil {
		return &ProvisioningIncompleteError{UserID: id, Step: StepProfileUpsert, Err: err}
	}
	return nil
}

// UpdateAsatidz mengubah profil (single-entity update) dan mengembalikan
// snapshot profil sesudahnya. Email sengaja TIDAK dikunci di sini —
// immutability email adalah policy pemanggil, bukan service.
func (s *ProvisioningService) UpdateAsatidz(ctx context.Context, id uuid.UUID, in ProfileUpdateInput) (*model.ProfileModel, error) {
	updates := map[string]any{
		"nama_lengkap": in.NamaLengkap,
		"username":     in.Username,
		"email":        in.Email,
		"no_hp":        nilIfEmpty(in.NoHP),
	}
	res := s.db.WithContext(ctx).Model(&model.ProfileModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, wrapStorage(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var out model.ProfileModel
	if err := s.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrapStorage(err)
	}
	return &out, nil
}

// DeactivateAsatidz mencabut role grant lalu menonaktifkan profil.
// Dua-duanya delete/update-if-exists, jadi aman diulang. Halaqoh yang masih
// menunjuk asatidz ini dibiarkan — referensinya di-resolve saat baca
// (aggregator menampilkan "-" untuk asatidz yang hilang/nonaktif).
func (s *ProvisioningService) DeactivateAsatidz(ctx context.Context, id uuid.UUID) error {
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", id, constants.RoleAsatidz).
		Delete(&model.UserRoleModel{}).Error; err != nil {
		return wrapStorage(err)
	}

	if err := s.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("aktif", false).Error; err != nil {
		return wrapStorage(err)
	}
	return nil
}

// GetProfile: raw lookup satu profil by id, termasuk yang nonaktif
// (riwayat setoran tetap butuh nama evaluator lama).
func (s *ProvisioningService) GetProfile(ctx context.Context, id uuid.UUID) (*model.ProfileModel, error) {
	var out model.ProfileModel
	if err := s.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrapStorage(err)
	}
	return &out, nil
}

/* ==========================
   Langkah idempoten
========================== */

func (s *ProvisioningService) grantAsatidzRole(ctx context.Context, userID uuid.UUID) error {
	grant := model.UserRoleModel{
		UserID: userID,
		Role:   constants.RoleAsatidz,
	}
	// ON CONFLICT DO NOTHING di unique (user_id, role) → insert-or-ignore
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&grant).Error; err != nil {
		return wrapStorage(err)
	}
	return nil
}

func (s *ProvisioningService) upsertProfile(ctx context.Context, id uuid.UUID, namaLengkap, username, email, noHP string) error {
	profile := model.ProfileModel{
		ID:          id,
		NamaLengkap: namaLengkap,
		Username:    username,
		Email:       strings.TrimSpace(strings.ToLower(email)),
		NoHP:        nilIfEmpty(noHP),
		Aktif:       true,
	}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"nama_lengkap", "username", "email", "no_hp", "aktif",
			}),
		}).
		Create(&profile).Error; err != nil {
		return wrapStorage(err)
	}
	return nil
}

/* ==========================
   Util
========================== */

func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func wrapStorage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
