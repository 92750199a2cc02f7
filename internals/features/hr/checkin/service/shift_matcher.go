// file: internals/features/hr/checkin/service/shift_matcher.go
package service

import (
	"time"

	masterModel "absenku_backend/internals/features/hr/masters/model"
)

// ShiftWindow: jendela shift konkret pada tanggal absensi.
type ShiftWindow struct {
	Name  string
	Start time.Time
	End   time.Time
}

// ResolveShiftWindow menempelkan jam shift ke tanggal check-in.
// Shift malam (end <= start) digeser: end jatuh di hari berikutnya.
// shiftType nil → karyawan tanpa shift default, kembalikan nil.
func ResolveShiftWindow(shiftType *masterModel.ShiftType, checkinTime time.Time) *ShiftWindow {
	if shiftType == nil {
		return nil
	}

	start := shiftType.ShiftTypeStartTime.OnDate(checkinTime)
	end := shiftType.ShiftTypeEndTime.OnDate(checkinTime)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	return &ShiftWindow{
		Name:  shiftType.ShiftTypeName,
		Start: start,
		End:   end,
	}
}
