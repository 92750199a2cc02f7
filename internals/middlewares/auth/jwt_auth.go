// internals/middlewares/auth/jwt_auth.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

/* =========================================================
   LOCALS KEYS — diisi middleware, dibaca controller
   ========================================================= */

const (
	LocUserID     = "user_id"
	LocUserName   = "user_name"
	LocFullName   = "full_name"
	LocUserEmail  = "user_email"
	LocAuthMethod = "auth_method" // "jwt" | "token"
)

// AuthedUser: hasil verifikasi credential pair (api_key:api_secret).
type AuthedUser struct {
	ID       uuid.UUID
	UserName string
	FullName string
	Email    string
}

type AuthJWTOpts struct {
	Secret              string
	CredentialChecker   func(apiKey, apiSecret string) (*AuthedUser, error) // verifikasi "token key:secret"
	AllowCookieFallback bool                                                // pakai cookie access_token jika tidak ada header
}

/* =========================================================
   MIDDLEWARE
   ========================================================= */

// AuthJWT menerima dua skema Authorization:
//   - "Bearer <jwt>"            → sesi login mobile (HS256)
//   - "token <api_key>:<secret>" → credential pair hasil mobile_login
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))

		// 1) Skema "token api_key:api_secret"
		if strings.HasPrefix(strings.ToLower(authz), "token ") {
			if o.CredentialChecker == nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Token auth is not enabled")
			}
			pair := strings.TrimSpace(authz[6:])
			key, sec, ok := strings.Cut(pair, ":")
			if !ok || strings.TrimSpace(key) == "" || strings.TrimSpace(sec) == "" {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid API token format")
			}
			u, err := o.CredentialChecker(strings.TrimSpace(key), strings.TrimSpace(sec))
			if err != nil || u == nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid API credentials")
			}
			c.Locals(LocUserID, u.ID.String())
			c.Locals(LocUserName, u.UserName)
			c.Locals(LocFullName, u.FullName)
			c.Locals(LocUserEmail, u.Email)
			c.Locals(LocAuthMethod, "token")
			return c.Next()
		}

		// 2) Skema Bearer (atau cookie jika diizinkan)
		raw := ""
		if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 3) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// Simpan raw claims (opsional)
		c.Locals("jwt_claims", claims)

		// === HYDRATE LOCALS YANG DIHARAPKAN CONTROLLER ===

		// user_id: ambil id/sub dalam urutan preferensi
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(LocUserID, strClaim(claims, "user_id"))
		}
		if v, ok := c.Locals(LocUserID).(string); !ok || strings.TrimSpace(v) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		if s := strClaim(claims, "user_name"); s != "" {
			c.Locals(LocUserName, s)
		}
		if s := strClaim(claims, "full_name"); s != "" {
			c.Locals(LocFullName, s)
		}
		if s := strClaim(claims, "user_email"); s != "" {
			c.Locals(LocUserEmail, s)
		}
		c.Locals(LocAuthMethod, "jwt")

		return c.Next()
	}
}

// util kecil untuk ambil string claim
func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// GetUserEmail membaca email caller dari Locals (boleh kosong).
func GetUserEmail(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserEmail).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// GetFullName membaca nama lengkap caller dari Locals; fallback ke user_name.
func GetFullName(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocFullName).(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	if s, ok := c.Locals(LocUserName).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
