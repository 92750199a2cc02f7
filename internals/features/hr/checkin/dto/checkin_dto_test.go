// file: internals/features/hr/checkin/dto/checkin_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	model "absenku_backend/internals/features/hr/checkin/model"
)

func TestFormatNaive(t *testing.T) {
	in := time.Date(2025, 1, 27, 9, 5, 7, 123456789, time.UTC)
	if got := FormatNaive(in); got != "2025-01-27T09:05:07" {
		t.Fatalf("got %q", got)
	}

	if got := FormatNaivePtr(nil); got != nil {
		t.Fatalf("nil harus tetap nil, dapat %v", *got)
	}
	s := FormatNaivePtr(&in)
	if s == nil || *s != "2025-01-27T09:05:07" {
		t.Fatalf("got %v", s)
	}
}

func TestNewCheckinCreatedResponse(t *testing.T) {
	if NewCheckinCreatedResponse(nil) != nil {
		t.Fatal("nil model harus menghasilkan nil response")
	}

	lat, lon := -6.2, 106.8
	shift := "Shift Pagi"
	start := time.Date(2025, 1, 27, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 27, 17, 0, 0, 0, time.UTC)

	m := &model.EmployeeCheckin{
		CheckinID:           uuid.New(),
		CheckinEmployeeCode: "HR-EMP-00001",
		CheckinEmployeeName: "Rizki Setyanto",
		CheckinLogType:      model.LogTypeIn,
		CheckinTime:         time.Date(2025, 1, 27, 9, 15, 30, 0, time.UTC),
		CheckinLatitude:     &lat,
		CheckinLongitude:    &lon,
		CheckinShift:        &shift,
		CheckinShiftStart:   &start,
		CheckinShiftEnd:     &end,
	}

	got := NewCheckinCreatedResponse(m)
	if got.EmployeeID != "HR-EMP-00001" {
		t.Fatalf("employee_id harus kode publik, dapat %q", got.EmployeeID)
	}
	if got.Time != "2025-01-27T09:15:30" {
		t.Fatalf("time = %q", got.Time)
	}
	if got.Status != "success" {
		t.Fatalf("status = %q", got.Status)
	}
	if got.ShiftStart == nil || *got.ShiftStart != "2025-01-27T09:00:00" {
		t.Fatalf("shift_start = %v", got.ShiftStart)
	}
	if got.ShiftEnd == nil || *got.ShiftEnd != "2025-01-27T17:00:00" {
		t.Fatalf("shift_end = %v", got.ShiftEnd)
	}
	if got.Attendance != nil {
		t.Fatal("attendance belum diproses, harus nil")
	}
}

func TestNewCheckinRecordItem(t *testing.T) {
	device := "android-xyz"
	m := &model.EmployeeCheckin{
		CheckinID:           uuid.New(),
		CheckinEmployeeCode: "HR-EMP-00002",
		CheckinEmployeeName: "Dewi Lestari",
		CheckinLogType:      model.LogTypeOut,
		CheckinTime:         time.Date(2025, 1, 27, 17, 1, 2, 0, time.UTC),
		CheckinDeviceID:     &device,
	}

	got := NewCheckinRecordItem(m)
	if got.LogType != model.LogTypeOut {
		t.Fatalf("log_type = %q", got.LogType)
	}
	if got.Time != "2025-01-27T17:01:02" {
		t.Fatalf("time = %q", got.Time)
	}
	if got.DeviceID == nil || *got.DeviceID != device {
		t.Fatalf("device_id = %v", got.DeviceID)
	}
	if got.SkipAutoAttendance {
		t.Fatal("skip_auto_attendance default false")
	}
}
