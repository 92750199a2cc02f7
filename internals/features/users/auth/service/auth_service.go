// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absenku_backend/internals/configs"
	authDTO "absenku_backend/internals/features/users/auth/dto"
	authModel "absenku_backend/internals/features/users/auth/model"
	authRepo "absenku_backend/internals/features/users/auth/repository"
	userModel "absenku_backend/internals/features/users/user/model"
	helper "absenku_backend/internals/helpers"
)

/* ==========================
   Const & small helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

var validate = validator.New()

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

/* ==========================
   JWT claims builders
========================== */

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":        "access",
		"sub":        user.ID.String(),
		"id":         user.ID.String(),
		"user_name":  user.UserName,
		"full_name":  user.FullName,
		"user_email": user.Email,
		"iat":        now.Unix(),
		"exp":        now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

/* ==========================
   MOBILE LOGIN
========================== */

// MobileLogin: autentikasi username/email + password, rotasi refresh token,
// dan (opsional) generate kredensial API untuk mobile.
// Sukses → dict {"login": {...}, "api_credentials": {...}} (bentuk klien lama).
func MobileLogin(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.MobileLoginRequest
	if isJSONBody(c) {
		if err := c.BodyParser(&input); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	} else {
		// klien lama mengirim form-urlencoded / multipart
		input.Usr = c.FormValue("usr")
		input.Pwd = c.FormValue("pwd")
		if v := c.FormValue("has_existing_token"); v != "" {
			input.HasExistingToken = v
		}
	}

	if err := validate.Struct(&input); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			switch ve[0].Field() {
			case "Usr":
				return helper.JsonError(c, fiber.StatusBadRequest, "Username is required.")
			case "Pwd":
				return helper.JsonError(c, fiber.StatusBadRequest, "Password is required.")
			}
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid login payload")
	}

	// Minimal user untuk verifikasi password
	userLight, err := authRepo.FindUserByEmailOrUsernameLight(db, input.Usr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid login credentials. Please check your username and password.")
	}
	if !userLight.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if bcrypt.CompareHashAndPassword([]byte(userLight.Password), []byte(input.Pwd)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid login credentials. Please check your username and password.")
	}

	// Full user
	userFull, err := authRepo.FindUserByID(db, userLight.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	// secrets
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	// Sign tokens
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(*userFull, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(userFull.ID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// Simpan refresh token (hashed) + bersihkan yang kadaluarsa
	ua, ip := c.Get("User-Agent"), c.IP()
	_ = authRepo.PurgeExpiredRefreshTokens(db, userFull.ID, now)
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshToken{
		UserID:    userFull.ID,
		TokenHash: computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(ua),
		IP:        strptr(ip),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	// Cookies
	setAuthCookies(c, accessToken, refreshToken, now)

	// Kredensial API (flag has_existing_token menentukan mutasi)
	plan, err := EnsureAPICredentials(db, userFull, input.WantsExistingToken())
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error generating API credentials")
	}

	resp := authDTO.MobileLoginResponse{
		Login: authDTO.LoginBlock{
			Message:  "Logged In",
			HomePage: "/app",
			FullName: userFull.FullName,
			Sid:      &accessToken,
		},
		APICredentials: authDTO.APICredentialsBlock{
			Token:     plan.Token,
			Generated: plan.Generated,
			Message:   plan.Message,
		},
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func isJSONBody(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, fiber.MIMEApplicationJSON)
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}
