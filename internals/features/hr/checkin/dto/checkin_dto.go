// file: internals/features/hr/checkin/dto/checkin_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "absenku_backend/internals/features/hr/checkin/model"
)

/* ===================== REQUESTS ===================== */

// CreateCheckinRequest: body POST checkin.
// Foto boleh berupa: file multipart, string base64 (dengan/ tanpa prefix data-URI),
// atau id file_asset yang sudah diupload sebelumnya.
type CreateCheckinRequest struct {
	EmployeeID string   `json:"employee_id" form:"employee_id"`
	LogType    string   `json:"log_type" form:"log_type"`
	Latitude   *float64 `json:"latitude" form:"latitude"`
	Longitude  *float64 `json:"longitude" form:"longitude"`
	DeviceID   *string  `json:"device_id" form:"device_id"`
	Timestamp  string   `json:"timestamp" form:"timestamp"`
	Notes      *string  `json:"notes" form:"notes"`

	LocationPhoto        string `json:"location_photo" form:"location_photo"`
	ClientBiometricPhoto string `json:"client_biometric_photo" form:"client_biometric_photo"`

	LocationPhotoID        string `json:"location_photo_id" form:"location_photo_id"`
	ClientBiometricPhotoID string `json:"client_biometric_photo_id" form:"client_biometric_photo_id"`
}

// ListCheckinQuery: query GET riwayat absensi.
type ListCheckinQuery struct {
	EmployeeID string `query:"employee_id"`
	LogType    string `query:"log_type"`
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
	Limit      string `query:"limit"`
	Offset     string `query:"offset"`
}

/* ===================== RESPONSES ===================== */

const naiveTimeLayout = "2006-01-02T15:04:05"

// FormatNaive: waktu absensi selalu tampil naive-UTC presisi detik
func FormatNaive(t time.Time) string {
	return t.Format(naiveTimeLayout)
}

func FormatNaivePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(naiveTimeLayout)
	return &s
}

type CheckinCreatedResponse struct {
	CheckinID    uuid.UUID `json:"checkin_id"`
	EmployeeID   string    `json:"employee_id"` // kode publik karyawan
	EmployeeName string    `json:"employee_name"`
	LogType      string    `json:"log_type"`
	Time         string    `json:"time"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Shift        *string   `json:"shift"`
	ShiftStart   *string   `json:"shift_start"`
	ShiftEnd     *string   `json:"shift_end"`
	Attendance   *string   `json:"attendance"`
	Status       string    `json:"status"`

	DistanceFromBranchMeters *float64 `json:"distance_from_branch_meters,omitempty"`

	LocationPhotoURL        *string    `json:"location_photo_url,omitempty"`
	LocationPhotoID         *uuid.UUID `json:"location_photo_id,omitempty"`
	ClientBiometricPhotoURL *string    `json:"client_biometric_photo_url,omitempty"`
	ClientBiometricPhotoID  *uuid.UUID `json:"client_biometric_photo_id,omitempty"`
}

func NewCheckinCreatedResponse(m *model.EmployeeCheckin) *CheckinCreatedResponse {
	if m == nil {
		return nil
	}
	return &CheckinCreatedResponse{
		CheckinID:    m.CheckinID,
		EmployeeID:   m.CheckinEmployeeCode,
		EmployeeName: m.CheckinEmployeeName,
		LogType:      m.CheckinLogType,
		Time:         FormatNaive(m.CheckinTime),
		Latitude:     m.CheckinLatitude,
		Longitude:    m.CheckinLongitude,
		Shift:        m.CheckinShift,
		ShiftStart:   FormatNaivePtr(m.CheckinShiftStart),
		ShiftEnd:     FormatNaivePtr(m.CheckinShiftEnd),
		Attendance:   m.CheckinAttendance,
		Status:       "success",
	}
}

type CheckinRecordItem struct {
	CheckinID    uuid.UUID `json:"checkin_id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	LogType      string    `json:"log_type"`
	Time         string    `json:"time"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	DeviceID     *string   `json:"device_id"`
	Shift        *string   `json:"shift"`
	ShiftStart   *string   `json:"shift_start"`
	ShiftEnd     *string   `json:"shift_end"`
	Attendance   *string   `json:"attendance"`

	SkipAutoAttendance bool `json:"skip_auto_attendance"`

	LocationPhotoID         *uuid.UUID `json:"location_photo_id,omitempty"`
	LocationPhotoURL        *string    `json:"location_photo_url,omitempty"`
	ClientBiometricPhotoID  *uuid.UUID `json:"client_biometric_photo_id,omitempty"`
	ClientBiometricPhotoURL *string    `json:"client_biometric_photo_url,omitempty"`
}

func NewCheckinRecordItem(m *model.EmployeeCheckin) CheckinRecordItem {
	return CheckinRecordItem{
		CheckinID:          m.CheckinID,
		EmployeeID:         m.CheckinEmployeeCode,
		EmployeeName:       m.CheckinEmployeeName,
		LogType:            m.CheckinLogType,
		Time:               FormatNaive(m.CheckinTime),
		Latitude:           m.CheckinLatitude,
		Longitude:          m.CheckinLongitude,
		DeviceID:           m.CheckinDeviceID,
		Shift:              m.CheckinShift,
		ShiftStart:         FormatNaivePtr(m.CheckinShiftStart),
		ShiftEnd:           FormatNaivePtr(m.CheckinShiftEnd),
		Attendance:         m.CheckinAttendance,
		SkipAutoAttendance: m.CheckinSkipAutoAttendance,
	}
}

type CheckinRecordsResponse struct {
	Records    []CheckinRecordItem `json:"records"`
	TotalCount int64               `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
	HasMore    bool                `json:"has_more"`
}
