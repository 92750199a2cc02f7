// file: internals/middlewares/auth/jwt_auth_test.go
package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const testSecret = "secret-uji-jwt"

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

// aplikasi uji: /me mengembalikan isi Locals yang dihydrate middleware
func newAuthTestApp(opts AuthJWTOpts) *fiber.App {
	app := fiber.New()
	app.Use(AuthJWT(opts))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":     c.Locals(LocUserID),
			"user_name":   c.Locals(LocUserName),
			"full_name":   GetFullName(c),
			"user_email":  GetUserEmail(c),
			"auth_method": c.Locals(LocAuthMethod),
		})
	})
	return app
}

func doAuthRequest(t *testing.T, app *fiber.App, authorization, cookie string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: cookie})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	body := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &body)
	return resp, body
}

func TestAuthJWT_Bearer(t *testing.T) {
	app := newAuthTestApp(AuthJWTOpts{Secret: testSecret})
	userID := uuid.NewString()

	t.Run("token valid", func(t *testing.T) {
		tok := signTestToken(t, testSecret, jwt.MapClaims{
			"id":         userID,
			"user_name":  "rizki",
			"full_name":  "Rizki Setyanto",
			"user_email": "rizki@absenku.id",
			"exp":        time.Now().Add(time.Hour).Unix(),
		})
		resp, body := doAuthRequest(t, app, "Bearer "+tok, "")
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if body["user_id"] != userID || body["user_email"] != "rizki@absenku.id" {
			t.Fatalf("locals tidak terisi: %v", body)
		}
		if body["auth_method"] != "jwt" {
			t.Fatalf("auth_method = %v", body["auth_method"])
		}
	})

	t.Run("tanpa header", func(t *testing.T) {
		resp, _ := doAuthRequest(t, app, "", "")
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})

	t.Run("secret salah", func(t *testing.T) {
		tok := signTestToken(t, "secret-lain", jwt.MapClaims{
			"id":  userID,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		resp, _ := doAuthRequest(t, app, "Bearer "+tok, "")
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})

	t.Run("kedaluwarsa", func(t *testing.T) {
		tok := signTestToken(t, testSecret, jwt.MapClaims{
			"id":  userID,
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		resp, _ := doAuthRequest(t, app, "Bearer "+tok, "")
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})

	t.Run("klaim id hilang", func(t *testing.T) {
		tok := signTestToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		resp, _ := doAuthRequest(t, app, "Bearer "+tok, "")
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})
}

func TestAuthJWT_TokenPair(t *testing.T) {
	authed := &AuthedUser{
		ID:       uuid.New(),
		UserName: "rizki",
		FullName: "Rizki Setyanto",
		Email:    "rizki@absenku.id",
	}
	app := newAuthTestApp(AuthJWTOpts{
		Secret: testSecret,
		CredentialChecker: func(apiKey, apiSecret string) (*AuthedUser, error) {
			if apiKey == "kunci" && apiSecret == "rahasia" {
				return authed, nil
			}
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid API credentials")
		},
	})

	t.Run("pasangan valid", func(t *testing.T) {
		resp, body := doAuthRequest(t, app, "token kunci:rahasia", "")
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if body["auth_method"] != "token" {
			t.Fatalf("auth_method = %v", body["auth_method"])
		}
		if body["user_email"] != "rizki@absenku.id" || body["full_name"] != "Rizki Setyanto" {
			t.Fatalf("locals: %v", body)
		}
	})

	t.Run("secret salah", func(t *testing.T) {
		resp, _ := doAuthRequest(t, app, "token kunci:bukan", "")
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})

	t.Run("format tanpa titik dua", func(t *testing.T) {
		resp, _ := doAuthRequest(t, app, "token kuncirahasia", "")
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})

	t.Run("checker tidak dipasang", func(t *testing.T) {
		plain := newAuthTestApp(AuthJWTOpts{Secret: testSecret})
		resp, _ := doAuthRequest(t, plain, "token kunci:rahasia", "")
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})
}

func TestAuthJWT_CookieFallback(t *testing.T) {
	userID := uuid.NewString()
	tok := signTestToken(t, testSecret, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	t.Run("fallback aktif", func(t *testing.T) {
		app := newAuthTestApp(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: true})
		resp, body := doAuthRequest(t, app, "", tok)
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if body["user_id"] != userID {
			t.Fatalf("locals: %v", body)
		}
	})

	t.Run("fallback mati", func(t *testing.T) {
		app := newAuthTestApp(AuthJWTOpts{Secret: testSecret})
		resp, _ := doAuthRequest(t, app, "", tok)
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})
}

func TestGetFullNameFallback(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(LocUserName, "rizki")
		return c.SendString(GetFullName(c))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	if string(raw) != "rizki" {
		t.Fatalf("fallback user_name gagal: %q", raw)
	}
}
