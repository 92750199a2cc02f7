// file: internals/features/hr/masters/model/branch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: branches
   ========================= */

type Branch struct {
	BranchID      uuid.UUID `json:"branch_id" gorm:"column:branch_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchName    string    `json:"branch_name" gorm:"column:branch_name;type:varchar(140);unique;not null"`
	BranchAddress *string   `json:"branch_address,omitempty" gorm:"column:branch_address;type:text"`

	// geofence absensi; ketiganya wajib terisi agar cabang bisa dipakai check-in
	BranchLatitude     *float64 `json:"branch_latitude,omitempty" gorm:"column:branch_latitude;type:double precision"`
	BranchLongitude    *float64 `json:"branch_longitude,omitempty" gorm:"column:branch_longitude;type:double precision"`
	BranchRadiusMeters *float64 `json:"branch_radius_meters,omitempty" gorm:"column:branch_radius_meters;type:double precision"`

	BranchCreatedAt time.Time `json:"branch_created_at" gorm:"column:branch_created_at;type:timestamptz;not null;default:now()"`
	BranchUpdatedAt time.Time `json:"branch_updated_at" gorm:"column:branch_updated_at;type:timestamptz;not null;default:now()"`
}

func (Branch) TableName() string { return "branches" }

func (b *Branch) BeforeUpdate(tx *gorm.DB) error {
	b.BranchUpdatedAt = time.Now().UTC()
	return nil
}

// HasGeofence true bila koordinat + radius lengkap
func (b *Branch) HasGeofence() bool {
	return b.BranchLatitude != nil && b.BranchLongitude != nil && b.BranchRadiusMeters != nil
}
