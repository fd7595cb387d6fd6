package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "tahfidzku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

const minPasswordLen = 6

// IdentityMetadata: data tambahan yang ikut disimpan saat identity dibuat.
type IdentityMetadata struct {
	NamaLengkap string
	Username    string
}

// IdentityStore adalah kontrak ke penyedia identity.
// Implementasi default menulis ke tabel users; kontraknya sengaja sempit
// (create saja, tanpa delete) — provisioning tidak pernah mengandalkan
// penghapusan identity.
type IdentityStore interface {
	CreateIdentity(ctx context.Context, email, password string, meta IdentityMetadata) (uuid.UUID, error)
}

type dbIdentityStore struct {
	db *gorm.DB
}

func NewDBIdentityStore(db *gorm.DB) IdentityStore {
	return &dbIdentityStore{db: db}
}

func (s *dbIdentityStore) CreateIdentity(ctx context.Context, email, password string, meta IdentityMetadata) (uuid.UUID, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if len(password) < minPasswordLen {
		return uuid.Nil, ErrIdentityInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, wrapStorage(err)
	}

	user := userModel.UserModel{
		UserName: meta.Username,
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, ErrIdentityConflict
		}
		return uuid.Nil, wrapStorage(err)
	}
	return user.ID, nil
}

// isUniqueViolation mengenali pelanggaran unique constraint dari pesan driver
// (postgres: "duplicate key", sqlite: "UNIQUE constraint failed").
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}
