// file: internals/features/hr/checkin/model/employee_checkin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bytedance/sonic"
)

/* =========================
   Log types
   ========================= */

const (
	LogTypeIn  = "IN"
	LogTypeOut = "OUT"
)

/* =========================
   GeoJSON payload (kolom geolocation)
   ========================= */

type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

type GeoFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   GeoPoint               `json:"geometry"`
}

type GeoFeatureCollection struct {
	Type     string       `json:"type"`
	Features []GeoFeature `json:"features"`
}

/* =========================
   Model: employee_checkins
   ========================= */

type EmployeeCheckin struct {
	CheckinID uuid.UUID `json:"checkin_id" gorm:"column:checkin_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	CheckinEmployeeID uuid.UUID `json:"checkin_employee_id" gorm:"column:checkin_employee_id;type:uuid;not null;index;uniqueIndex:uq_employee_checkins_daily"`

	// snapshot identitas agar riwayat tetap utuh walau master berubah
	CheckinEmployeeCode string `json:"checkin_employee_code" gorm:"column:checkin_employee_code;type:varchar(40);not null"`
	CheckinEmployeeName string `json:"checkin_employee_name" gorm:"column:checkin_employee_name;type:varchar(140);not null"`

	CheckinLogType string `json:"checkin_log_type" gorm:"column:checkin_log_type;type:varchar(3);not null;uniqueIndex:uq_employee_checkins_daily"`

	// waktu absensi: UTC naive, presisi detik
	CheckinTime time.Time `json:"checkin_time" gorm:"column:checkin_time;type:timestamp;not null"`

	// tanggal kalender turunan dari checkin_time; kunci aturan 1x IN + 1x OUT per hari
	CheckinDate time.Time `json:"checkin_date" gorm:"column:checkin_date;type:date;not null;uniqueIndex:uq_employee_checkins_daily"`

	CheckinLatitude  *float64 `json:"checkin_latitude,omitempty" gorm:"column:checkin_latitude;type:double precision"`
	CheckinLongitude *float64 `json:"checkin_longitude,omitempty" gorm:"column:checkin_longitude;type:double precision"`

	CheckinDeviceID *string `json:"checkin_device_id,omitempty" gorm:"column:checkin_device_id;type:varchar(140)"`
	CheckinNotes    *string `json:"checkin_notes,omitempty" gorm:"column:checkin_notes;type:text"`

	// jendela shift hasil pencocokan saat insert
	CheckinShift      *string    `json:"checkin_shift,omitempty" gorm:"column:checkin_shift;type:varchar(140)"`
	CheckinShiftStart *time.Time `json:"checkin_shift_start,omitempty" gorm:"column:checkin_shift_start;type:timestamp"`
	CheckinShiftEnd   *time.Time `json:"checkin_shift_end,omitempty" gorm:"column:checkin_shift_end;type:timestamp"`

	// diisi proses attendance terpisah
	CheckinAttendance         *string `json:"checkin_attendance,omitempty" gorm:"column:checkin_attendance;type:varchar(140)"`
	CheckinSkipAutoAttendance bool    `json:"checkin_skip_auto_attendance" gorm:"column:checkin_skip_auto_attendance;not null;default:false"`

	CheckinGeolocation datatypes.JSON `json:"checkin_geolocation,omitempty" gorm:"column:checkin_geolocation;type:jsonb"`

	// backfill foto setelah upload
	CheckinLocationPhotoID   *uuid.UUID `json:"checkin_location_photo_id,omitempty" gorm:"column:checkin_location_photo_id;type:uuid"`
	CheckinLocationPhotoURL  *string    `json:"checkin_location_photo_url,omitempty" gorm:"column:checkin_location_photo_url;type:text"`
	CheckinBiometricPhotoID  *uuid.UUID `json:"checkin_biometric_photo_id,omitempty" gorm:"column:checkin_biometric_photo_id;type:uuid"`
	CheckinBiometricPhotoURL *string    `json:"checkin_biometric_photo_url,omitempty" gorm:"column:checkin_biometric_photo_url;type:text"`

	CheckinCreatedAt time.Time `json:"checkin_created_at" gorm:"column:checkin_created_at;type:timestamptz;not null;default:now()"`
	CheckinUpdatedAt time.Time `json:"checkin_updated_at" gorm:"column:checkin_updated_at;type:timestamptz;not null;default:now()"`
}

func (EmployeeCheckin) TableName() string { return "employee_checkins" }

/* =========================
   Hooks
   ========================= */

func (ec *EmployeeCheckin) BeforeCreate(tx *gorm.DB) error {
	// jaga invariant: checkin_date selalu turunan tanggal dari checkin_time
	ec.CheckinDate = time.Date(
		ec.CheckinTime.Year(), ec.CheckinTime.Month(), ec.CheckinTime.Day(),
		0, 0, 0, 0, time.UTC,
	)
	ec.CheckinUpdatedAt = time.Now().UTC()
	return nil
}

func (ec *EmployeeCheckin) BeforeUpdate(tx *gorm.DB) error {
	ec.CheckinUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Geolocation setter (GeoJSON FeatureCollection)
   ========================= */

func (ec *EmployeeCheckin) SetGeolocation() error {
	if ec.CheckinLatitude == nil || ec.CheckinLongitude == nil {
		return nil
	}
	fc := GeoFeatureCollection{
		Type: "FeatureCollection",
		Features: []GeoFeature{
			{
				Type:       "Feature",
				Properties: map[string]interface{}{},
				Geometry: GeoPoint{
					Type:        "Point",
					Coordinates: []float64{*ec.CheckinLongitude, *ec.CheckinLatitude},
				},
			},
		},
	}
	raw, err := sonic.Marshal(fc)
	if err != nil {
		return err
	}
	ec.CheckinGeolocation = datatypes.JSON(raw)
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeEmployee(employeeID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("checkin_employee_id = ?", employeeID)
	}
}

func ScopeLogType(logType string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("checkin_log_type = ?", logType)
	}
}

// ScopeTimeWindow: start inklusif, end eksklusif
func ScopeTimeWindow(start, end time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("checkin_time >= ? AND checkin_time < ?", start, end)
	}
}
