// file: internals/features/hr/masters/model/shift_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/helpers/dbtime"
)

/* =========================
   Model: shift_types
   ========================= */

type ShiftType struct {
	ShiftTypeID   uuid.UUID `json:"shift_type_id" gorm:"column:shift_type_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ShiftTypeName string    `json:"shift_type_name" gorm:"column:shift_type_name;type:varchar(140);unique;not null"`

	// jam kerja; shift malam boleh end < start (lewat tengah malam)
	ShiftTypeStartTime dbtime.Tod `json:"shift_type_start_time" gorm:"column:shift_type_start_time;type:time;not null"`
	ShiftTypeEndTime   dbtime.Tod `json:"shift_type_end_time" gorm:"column:shift_type_end_time;type:time;not null"`

	ShiftTypeCreatedAt time.Time `json:"shift_type_created_at" gorm:"column:shift_type_created_at;type:timestamptz;not null;default:now()"`
	ShiftTypeUpdatedAt time.Time `json:"shift_type_updated_at" gorm:"column:shift_type_updated_at;type:timestamptz;not null;default:now()"`
}

func (ShiftType) TableName() string { return "shift_types" }

func (s *ShiftType) BeforeUpdate(tx *gorm.DB) error {
	s.ShiftTypeUpdatedAt = time.Now().UTC()
	return nil
}
