// file: internals/features/hr/checkin/service/geofence_test.go
package service

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestHaversineDistanceMeters(t *testing.T) {
	// titik identik → nol
	if d := HaversineDistanceMeters(-6.2, 106.8, -6.2, 106.8); d != 0 {
		t.Fatalf("jarak titik identik = %v, mau 0", d)
	}

	// 0.001 derajat lintang ≈ 111 meter
	d := HaversineDistanceMeters(40.0000, -74.0000, 40.0010, -74.0000)
	if math.Abs(d-111.19) > 1.0 {
		t.Fatalf("jarak 0.001° lintang = %v, mau ~111.19", d)
	}
}

func TestValidateGeofence(t *testing.T) {
	settings := &CheckinSettings{
		BranchLatitude:  40.0,
		BranchLongitude: -74.0,
		BranchRadius:    100,
	}

	t.Run("dalam radius", func(t *testing.T) {
		d, err := ValidateGeofence(40.0001, -74.0, settings, "IN")
		if err != nil {
			t.Fatalf("mau lolos, dapat error: %v", err)
		}
		if d <= 0 || d > 100 {
			t.Fatalf("jarak %v di luar rentang masuk akal", d)
		}
	})

	t.Run("di luar radius", func(t *testing.T) {
		_, err := ValidateGeofence(40.0010, -74.0, settings, "IN")
		assertFiberError(t, err, fiber.StatusBadRequest, "meters away from the branch location")
		if !strings.Contains(err.Error(), "to check in.") {
			t.Fatalf("pesan IN harus menyebut 'check in': %q", err.Error())
		}
	})

	t.Run("di luar radius saat OUT", func(t *testing.T) {
		_, err := ValidateGeofence(40.0010, -74.0, settings, "OUT")
		assertFiberError(t, err, fiber.StatusBadRequest, "to check out.")
	})

	t.Run("latitude di luar rentang", func(t *testing.T) {
		_, err := ValidateGeofence(95, -74.0, settings, "IN")
		assertFiberError(t, err, fiber.StatusBadRequest, "Invalid latitude value")
	})

	t.Run("longitude di luar rentang", func(t *testing.T) {
		_, err := ValidateGeofence(40.0, 200, settings, "IN")
		assertFiberError(t, err, fiber.StatusBadRequest, "Invalid longitude value")
	})
}

// assertFiberError: error harus *fiber.Error dengan kode & potongan pesan tertentu.
func assertFiberError(t *testing.T, err error, wantCode int, wantSubstr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("mau error mengandung %q, dapat nil", wantSubstr)
	}
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("mau *fiber.Error, dapat %T: %v", err, err)
	}
	if fe.Code != wantCode {
		t.Fatalf("kode = %d, mau %d (pesan: %q)", fe.Code, wantCode, fe.Message)
	}
	if !strings.Contains(fe.Message, wantSubstr) {
		t.Fatalf("pesan %q tidak mengandung %q", fe.Message, wantSubstr)
	}
}
