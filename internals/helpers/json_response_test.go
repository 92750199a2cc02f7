// file: internals/helpers/json_response_test.go
package helper

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestResolveLimitOffset(t *testing.T) {
	app := fiber.New()
	app.Get("/records", func(c *fiber.Ctx) error {
		limit, offset := ResolveLimitOffset(c, 100)
		return c.JSON(fiber.Map{"limit": limit, "offset": offset})
	})

	cases := []struct {
		name       string
		query      string
		wantLimit  float64
		wantOffset float64
	}{
		{"tanpa query", "", 100, 0},
		{"limit & offset valid", "?limit=5&offset=10", 5, 10},
		{"limit bukan angka", "?limit=abc", 100, 0},
		{"limit nol", "?limit=0", 100, 0},
		{"limit negatif", "?limit=-3", 100, 0},
		{"offset negatif", "?offset=-7", 100, 0},
		{"offset bukan angka", "?limit=20&offset=x", 20, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/records"+tc.query, nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			var body map[string]float64
			raw, _ := io.ReadAll(resp.Body)
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatalf("decode %q: %v", raw, err)
			}
			if body["limit"] != tc.wantLimit || body["offset"] != tc.wantOffset {
				t.Fatalf("got limit=%v offset=%v, mau %v/%v", body["limit"], body["offset"], tc.wantLimit, tc.wantOffset)
			}
		})
	}
}

func TestJsonException(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return JsonException(c, fiber.StatusOK, "Location photo is required for check-in.")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("body harus hanya berisi exception: %v", body)
	}
	if body["exception"] != "Location photo is required for check-in." {
		t.Fatalf("exception = %v", body["exception"])
	}
}

func TestJsonError(t *testing.T) {
	app := fiber.New()
	app.Get("/err", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "Employee not found.")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/err", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body ErrorResponse
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Fatal("success harus false")
	}
	if body.Message != "Employee not found." || body.ErrorCode != "NOT_FOUND" {
		t.Fatalf("body = %+v", body)
	}
}
