// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "tahfidzku_backend/internals/features/users/auth/model"
	userModel "tahfidzku_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmailOrUsername(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ? OR user_name = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

/* ====================== ROLES ====================== */

// RolesForUser mengembalikan daftar role user untuk klaim JWT.
func RolesForUser(db *gorm.DB, userID uuid.UUID) ([]string, error) {
	var roles []string
	if err := db.Raw(`SELECT role FROM user_roles WHERE user_id = ? ORDER BY role ASC`, userID).
		Scan(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshTokenModel) error {
	return db.Create(token).Error
}

func RefreshTokenHashExists(db *gorm.DB, hash []byte) (bool, error) {
	var n int64
	if err := db.Model(&authModel.RefreshTokenModel{}).Where("token = ?", hash).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func DeleteRefreshTokenByHash(db *gorm.DB, hash []byte) error {
	return db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error
}

/* ====================== BLACKLIST ====================== */

// BlacklistToken idempoten: token yang sudah ada tidak dianggap error.
func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	entry := authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}
	err := db.Create(&entry).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}

func IsTokenBlacklisted(db *gorm.DB, token string) (bool, error) {
	var n int64
	if err := db.Model(&authModel.TokenBlacklist{}).
		Where("token = ? AND expired_at > ?", token, time.Now().UTC()).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique")
}
