// file: internals/features/hr/checkin/service/timestamp_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestParseFlexibleDatetime(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339 utc", "2025-01-27T09:15:30Z", time.Date(2025, 1, 27, 9, 15, 30, 0, time.UTC)},
		{"rfc3339 offset dikonversi utc", "2025-01-27T16:15:30+07:00", time.Date(2025, 1, 27, 9, 15, 30, 0, time.UTC)},
		{"sub-detik dibuang", "2025-01-27T09:15:30.123456Z", time.Date(2025, 1, 27, 9, 15, 30, 0, time.UTC)},
		{"naive T", "2025-01-27T09:15:30", time.Date(2025, 1, 27, 9, 15, 30, 0, time.UTC)},
		{"naive spasi", "2025-01-27 09:15:30", time.Date(2025, 1, 27, 9, 15, 30, 0, time.UTC)},
		{"tanpa detik", "2025-01-27T09:15", time.Date(2025, 1, 27, 9, 15, 0, 0, time.UTC)},
		{"tanggal saja", "2025-01-27", time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC)},
		{"spasi pinggir dipangkas", "  2025-01-27T09:15:30Z  ", time.Date(2025, 1, 27, 9, 15, 30, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFlexibleDatetime(tc.raw)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.raw, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("parse %q = %v, mau %v", tc.raw, got, tc.want)
			}
			if got.Location() != time.UTC {
				t.Fatalf("hasil harus UTC, dapat %v", got.Location())
			}
		})
	}

	if _, err := ParseFlexibleDatetime("27-01-2025"); err == nil {
		t.Fatal("format dd-mm-yyyy harus ditolak")
	}
}

func TestNormalizeCheckinTimestamp(t *testing.T) {
	now := time.Date(2025, 1, 27, 9, 15, 30, 987654321, time.UTC)

	t.Run("kosong pakai now dipangkas ke detik", func(t *testing.T) {
		got, err := NormalizeCheckinTimestamp("", now)
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		want := time.Date(2025, 1, 27, 9, 15, 30, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, mau %v", got, want)
		}
	})

	t.Run("eksplisit dipakai apa adanya", func(t *testing.T) {
		got, err := NormalizeCheckinTimestamp("2025-01-26T08:00:00Z", now)
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		want := time.Date(2025, 1, 26, 8, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, mau %v", got, want)
		}
	})

	t.Run("format rusak jadi 400", func(t *testing.T) {
		_, err := NormalizeCheckinTimestamp("bukan-waktu", now)
		assertFiberError(t, err, fiber.StatusBadRequest, "Invalid timestamp format. Please use ISO 8601 format")
	})
}

func TestStartOfCheckinDay(t *testing.T) {
	in := time.Date(2025, 1, 27, 23, 59, 59, 0, time.UTC)
	want := time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC)
	if got := StartOfCheckinDay(in); !got.Equal(want) {
		t.Fatalf("got %v, mau %v", got, want)
	}
}

func TestListRangeEnd(t *testing.T) {
	end := time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC)

	// tanggal polos → inklusif sampai akhir hari
	if got := listRangeEnd(end, "2025-01-27"); !got.Equal(end.AddDate(0, 0, 1)) {
		t.Fatalf("tanggal polos: got %v", got)
	}

	// timestamp penuh → inklusif presisi detik
	full := time.Date(2025, 1, 27, 17, 30, 0, 0, time.UTC)
	if got := listRangeEnd(full, "2025-01-27T17:30:00"); !got.Equal(full.Add(time.Second)) {
		t.Fatalf("timestamp penuh: got %v", got)
	}
}
