// file: internals/features/hr/checkin/service/shift_matcher_test.go
package service

import (
	"testing"
	"time"

	masterModel "absenku_backend/internals/features/hr/masters/model"
	"absenku_backend/internals/helpers/dbtime"
)

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	if err != nil {
		t.Fatalf("parse tod %q: %v", s, err)
	}
	return tod
}

func TestResolveShiftWindow(t *testing.T) {
	checkinTime := time.Date(2025, 1, 27, 9, 30, 0, 0, time.UTC)

	t.Run("tanpa shift", func(t *testing.T) {
		if got := ResolveShiftWindow(nil, checkinTime); got != nil {
			t.Fatalf("mau nil, dapat %+v", got)
		}
	})

	t.Run("shift siang", func(t *testing.T) {
		shift := &masterModel.ShiftType{
			ShiftTypeName:      "Shift Pagi",
			ShiftTypeStartTime: mustTod(t, "09:00:00"),
			ShiftTypeEndTime:   mustTod(t, "17:00:00"),
		}
		got := ResolveShiftWindow(shift, checkinTime)
		if got == nil {
			t.Fatal("mau window, dapat nil")
		}
		if got.Name != "Shift Pagi" {
			t.Fatalf("name = %q", got.Name)
		}
		wantStart := time.Date(2025, 1, 27, 9, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2025, 1, 27, 17, 0, 0, 0, time.UTC)
		if !got.Start.Equal(wantStart) || !got.End.Equal(wantEnd) {
			t.Fatalf("window = %v..%v, mau %v..%v", got.Start, got.End, wantStart, wantEnd)
		}
	})

	t.Run("shift malam lewat tengah malam", func(t *testing.T) {
		shift := &masterModel.ShiftType{
			ShiftTypeName:      "Shift Malam",
			ShiftTypeStartTime: mustTod(t, "22:00:00"),
			ShiftTypeEndTime:   mustTod(t, "06:00:00"),
		}
		got := ResolveShiftWindow(shift, checkinTime)
		wantStart := time.Date(2025, 1, 27, 22, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2025, 1, 28, 6, 0, 0, 0, time.UTC)
		if !got.Start.Equal(wantStart) || !got.End.Equal(wantEnd) {
			t.Fatalf("window = %v..%v, mau %v..%v", got.Start, got.End, wantStart, wantEnd)
		}
	})
}
