// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "absenku_backend/internals/features/users/auth/model"
	userModel "absenku_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

// Versi ringan untuk hot path login (hindari SELECT *)
func FindUserByEmailOrUsernameLight(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Select("id", "password", "is_active").
		Where("email = ? OR user_name = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByAPIKey(db *gorm.DB, apiKey string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("api_key = ?", apiKey).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Persist hasil generate credential. Secret TIDAK pernah disimpan plaintext.
func SaveAPICredentials(db *gorm.DB, userID uuid.UUID, apiKey, secretHash string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"api_key":         apiKey,
			"api_secret_hash": secretHash,
			"updated_at":      time.Now(),
		}).Error
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, rt *authModel.RefreshToken) error {
	return db.Create(rt).Error
}

// Bersihkan token kadaluarsa milik user (best-effort saat login)
func PurgeExpiredRefreshTokens(db *gorm.DB, userID uuid.UUID, now time.Time) error {
	return db.Where("user_id = ? AND expires_at < ?", userID, now).
		Delete(&authModel.RefreshToken{}).Error
}
