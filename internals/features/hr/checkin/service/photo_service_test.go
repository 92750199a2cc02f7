// file: internals/features/hr/checkin/service/photo_service_test.go
package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helperOSS "absenku_backend/internals/helpers/oss"
)

func TestDecodePhotoPayload(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("foto-demo"))

	t.Run("base64 polos", func(t *testing.T) {
		got, err := DecodePhotoPayload(payload)
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		if string(got) != "foto-demo" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("prefix data-URI dibuang", func(t *testing.T) {
		got, err := DecodePhotoPayload("data:image/jpeg;base64," + payload)
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		if string(got) != "foto-demo" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("string kosong bukan error", func(t *testing.T) {
		got, err := DecodePhotoPayload("   ")
		if err != nil || got != nil {
			t.Fatalf("got %v, %v; mau nil, nil", got, err)
		}
	})

	t.Run("base64 rusak", func(t *testing.T) {
		_, err := DecodePhotoPayload("!!bukan-base64!!")
		assertFiberError(t, err, fiber.StatusBadRequest, "Invalid image format")
	})

	t.Run("data-URI tanpa isi", func(t *testing.T) {
		_, err := DecodePhotoPayload("data:image/jpeg;base64,")
		assertFiberError(t, err, fiber.StatusBadRequest, "The photo appears to be empty")
	})
}

func TestCheckinPhotoFilename(t *testing.T) {
	at := time.Date(2025, 1, 27, 9, 15, 30, 0, time.UTC)
	got := checkinPhotoFilename("location", "HR-EMP-00001", at)
	if got != "location_photo_HR-EMP-00001_20250127_091530.jpg" {
		t.Fatalf("filename = %q", got)
	}

	// waktu non-UTC dinormalisasi dulu
	wib := time.FixedZone("WIB", 7*3600)
	got = checkinPhotoFilename("biometric", "HR-EMP-00002", time.Date(2025, 1, 27, 16, 15, 30, 0, wib))
	if got != "biometric_photo_HR-EMP-00002_20250127_091530.jpg" {
		t.Fatalf("filename WIB = %q", got)
	}
}

func TestUploadCheckinPhotoGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("bytes kosong", func(t *testing.T) {
		_, err := UploadCheckinPhoto(ctx, nil, nil, "HR-EMP-00001", uuid.New(), "location", nil)
		assertFiberError(t, err, fiber.StatusBadRequest, "Photo file is empty")
	})

	t.Run("melebihi 5MB", func(t *testing.T) {
		big := make([]byte, helperOSS.MaxUploadSize+1)
		_, err := UploadCheckinPhoto(ctx, nil, nil, "HR-EMP-00001", uuid.New(), "location", big)
		assertFiberError(t, err, fiber.StatusBadRequest, "maximum limit of 5MB")
	})
}

func TestPhotoRequiredErrorIsPlainError(t *testing.T) {
	err := &PhotoRequiredError{Message: "Location photo is required for check-in."}
	if err.Error() != "Location photo is required for check-in." {
		t.Fatalf("pesan = %q", err.Error())
	}
	// bukan *fiber.Error: controller membedakannya untuk kontrak 200+exception
	var fe *fiber.Error
	if ok := asFiberError(err, &fe); ok {
		t.Fatal("PhotoRequiredError tidak boleh cocok dengan *fiber.Error")
	}
}

func asFiberError(err error, target **fiber.Error) bool {
	fe, ok := err.(*fiber.Error)
	if ok {
		*target = fe
	}
	return ok
}
