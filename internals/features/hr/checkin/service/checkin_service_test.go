// file: internals/features/hr/checkin/service/checkin_service_test.go
package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

func TestTranslateInsertError(t *testing.T) {
	t.Run("pelanggaran unique postgres", func(t *testing.T) {
		err := translateInsertError(&pq.Error{Code: "23505", Message: "duplicate key value"})
		assertFiberError(t, err, fiber.StatusBadRequest,
			"A check-in record already exists for this timestamp. Please wait a moment and try again, or use a different timestamp.")
	})

	t.Run("teks duplicate dari driver lain", func(t *testing.T) {
		err := translateInsertError(errors.New("UNIQUE constraint failed: Duplicate entry"))
		assertFiberError(t, err, fiber.StatusBadRequest, "Please wait a moment and try again.")
		var fe *fiber.Error
		errors.As(err, &fe)
		if strings.Contains(fe.Message, "use a different timestamp") {
			t.Fatal("jalur teks duplicate memakai pesan pendek")
		}
	})

	t.Run("error lain dibungkus 400", func(t *testing.T) {
		err := translateInsertError(errors.New("connection reset"))
		assertFiberError(t, err, fiber.StatusBadRequest, "Error creating check-in record: connection reset")
	})
}

func TestDailyTransitionError(t *testing.T) {
	const day = "January 05, 2025"

	t.Run("IN pertama hari itu boleh", func(t *testing.T) {
		if err := dailyTransitionError("IN", "check-in", day, 0, 0); err != nil {
			t.Fatalf("mau nil, dapat %v", err)
		}
	})

	t.Run("IN kedua ditolak", func(t *testing.T) {
		err := dailyTransitionError("IN", "check-in", day, 1, 1)
		assertFiberError(t, err, fiber.StatusBadRequest,
			"You have already completed your check-in for January 05, 2025. Only one check-in and one check-out are allowed per day.")
	})

	t.Run("OUT tanpa IN ditolak", func(t *testing.T) {
		err := dailyTransitionError("OUT", "check-out", day, 0, 0)
		assertFiberError(t, err, fiber.StatusBadRequest,
			"You must check-in before you can check-out. No check-in record found for January 05, 2025.")
	})

	t.Run("OUT setelah IN boleh", func(t *testing.T) {
		if err := dailyTransitionError("OUT", "check-out", day, 1, 0); err != nil {
			t.Fatalf("mau nil, dapat %v", err)
		}
	})

	t.Run("OUT kedua ditolak", func(t *testing.T) {
		err := dailyTransitionError("OUT", "check-out", day, 1, 1)
		assertFiberError(t, err, fiber.StatusBadRequest,
			"You have already completed your check-out for January 05, 2025.")
	})

	// urutan aturan: tanpa IN, pesan "must check-in" menang atas duplikat
	t.Run("OUT tanpa IN tapi sudah ada OUT", func(t *testing.T) {
		err := dailyTransitionError("OUT", "check-out", day, 0, 1)
		assertFiberError(t, err, fiber.StatusBadRequest, "You must check-in before you can check-out.")
	})
}

func TestHasMoreRecords(t *testing.T) {
	cases := []struct {
		name   string
		offset int
		limit  int
		total  int64
		want   bool
	}{
		{"tabel kosong", 0, 100, 0, false},
		{"halaman pertama dari 250", 0, 100, 250, true},
		{"halaman kedua dari 250", 100, 100, 250, true},
		{"halaman terakhir dari 250", 200, 100, 250, false},
		{"pas habis di batas", 0, 100, 100, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hasMoreRecords(tc.offset, tc.limit, tc.total); got != tc.want {
				t.Fatalf("hasMoreRecords(%d, %d, %d) = %v, mau %v",
					tc.offset, tc.limit, tc.total, got, tc.want)
			}
		})
	}
}
