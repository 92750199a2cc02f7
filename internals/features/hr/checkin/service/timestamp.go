// file: internals/features/hr/checkin/service/timestamp.go
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// layout yang diterima dari klien; tz-aware dikonversi UTC lalu zonanya dibuang
var flexibleLayouts = []struct {
	layout string
	hasTZ  bool
}{
	{time.RFC3339, true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02", false},
}

// ParseFlexibleDatetime: ISO 8601 / YYYY-MM-DD → waktu naive-UTC.
func ParseFlexibleDatetime(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	var lastErr error
	for _, l := range flexibleLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			lastErr = err
			continue
		}
		if l.hasTZ {
			t = t.UTC()
		}
		// normalisasi: nilai polos tanpa zona (disimpan & dibandingkan apa adanya)
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
	}
	return time.Time{}, lastErr
}

// NormalizeCheckinTimestamp: timestamp opsional dari klien → waktu absensi.
// Kosong → now UTC. Presisi selalu dipangkas ke detik.
func NormalizeCheckinTimestamp(raw string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		n := now.UTC()
		return time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), 0, time.UTC), nil
	}
	t, err := ParseFlexibleDatetime(raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Invalid timestamp format. Please use ISO 8601 format (e.g., 2025-01-27T09:15:30Z). Error: %v", err))
	}
	return t, nil
}

// StartOfCheckinDay: awal hari kalender dari waktu absensi (jendela aturan harian).
func StartOfCheckinDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
