// file: internals/features/users/auth/service/credential_service.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authRepo "absenku_backend/internals/features/users/auth/repository"
	userModel "absenku_backend/internals/features/users/user/model"
	authMiddleware "absenku_backend/internals/middlewares/auth"
)

const apiCredentialLength = 15 // panjang api_key/api_secret (mengikuti klien lama)

/* ==========================
   PLAN (pure, tanpa DB)
========================== */

// CredentialPlan: keputusan kredensial untuk satu login.
// Key lama dipertahankan; secret SELALU dirotasi saat generate.
type CredentialPlan struct {
	APIKey    string
	APISecret string
	Token     *string // "api_key:api_secret"
	Generated bool
	Message   string
}

// PlanAPICredentials menghitung kredensial tanpa menyentuh DB.
// wantExisting=true → tidak ada mutasi, token nil.
func PlanAPICredentials(existingKey *string, wantExisting bool) CredentialPlan {
	if wantExisting {
		return CredentialPlan{
			Token:     nil,
			Generated: false,
			Message:   "Using existing API credentials.",
		}
	}

	hadKey := existingKey != nil && strings.TrimSpace(*existingKey) != ""

	secret := generateHash(apiCredentialLength)
	key := ""
	if hadKey {
		key = strings.TrimSpace(*existingKey)
	} else {
		key = generateHash(apiCredentialLength)
	}

	token := key + ":" + secret
	msg := "API credentials generated successfully."
	if hadKey {
		msg = "New API credentials generated. Old credentials are now invalid."
	}
	return CredentialPlan{
		APIKey:    key,
		APISecret: secret,
		Token:     &token,
		Generated: true,
		Message:   msg,
	}
}

// generateHash: random string hex sepanjang n karakter.
func generateHash(n int) string {
	buf := make([]byte, (n+1)/2)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)[:n]
}

/* ==========================
   PERSIST & VERIFY
========================== */

// EnsureAPICredentials menjalankan plan lalu menyimpan hasilnya.
// Secret disimpan sebagai bcrypt hash (plaintext hanya ada di response login).
func EnsureAPICredentials(db *gorm.DB, user *userModel.UserModel, wantExisting bool) (CredentialPlan, error) {
	plan := PlanAPICredentials(user.APIKey, wantExisting)
	if !plan.Generated {
		return plan, nil
	}

	secretHash, err := bcrypt.GenerateFromPassword([]byte(plan.APISecret), bcrypt.DefaultCost)
	if err != nil {
		return plan, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat hash api_secret")
	}
	if err := authRepo.SaveAPICredentials(db, user.ID, plan.APIKey, string(secretHash)); err != nil {
		return plan, err
	}
	return plan, nil
}

// VerifyAPICredentials: checker untuk skema "Authorization: token key:secret".
// Dipasang sebagai CredentialChecker di middleware AuthJWT.
func VerifyAPICredentials(db *gorm.DB) func(apiKey, apiSecret string) (*authMiddleware.AuthedUser, error) {
	return func(apiKey, apiSecret string) (*authMiddleware.AuthedUser, error) {
		user, err := authRepo.FindUserByAPIKey(db, apiKey)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid API credentials")
		}
		if !user.IsActive {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Akun Anda telah dinonaktifkan. Hubungi admin.")
		}
		if user.APISecretHash == nil ||
			bcrypt.CompareHashAndPassword([]byte(*user.APISecretHash), []byte(apiSecret)) != nil {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid API credentials")
		}
		return &authMiddleware.AuthedUser{
			ID:       user.ID,
			UserName: user.UserName,
			FullName: user.FullName,
			Email:    user.Email,
		}, nil
	}
}
