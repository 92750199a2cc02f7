// file: internals/features/hr/masters/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: departments
   ========================= */

type Department struct {
	DepartmentID        uuid.UUID `json:"department_id" gorm:"column:department_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	DepartmentName      string    `json:"department_name" gorm:"column:department_name;type:varchar(140);not null"`
	DepartmentCompanyID uuid.UUID `json:"department_company_id" gorm:"column:department_company_id;type:uuid;not null;index"`

	// project sumber aturan (dipakai saat company_use_department_settings = false)
	DepartmentProjectID *uuid.UUID `json:"department_project_id,omitempty" gorm:"column:department_project_id;type:uuid"`

	// aturan absensi; pointer karena NULL ≠ false (NULL = belum dikonfigurasi)
	DepartmentRequireLocationPhoto    *bool `json:"department_require_location_photo,omitempty" gorm:"column:department_require_location_photo"`
	DepartmentRequireBiometricPhoto   *bool `json:"department_require_biometric_photo,omitempty" gorm:"column:department_require_biometric_photo"`
	DepartmentRequireCheckoutLocation *bool `json:"department_require_checkout_location,omitempty" gorm:"column:department_require_checkout_location"`

	DepartmentCreatedAt time.Time `json:"department_created_at" gorm:"column:department_created_at;type:timestamptz;not null;default:now()"`
	DepartmentUpdatedAt time.Time `json:"department_updated_at" gorm:"column:department_updated_at;type:timestamptz;not null;default:now()"`
}

func (Department) TableName() string { return "departments" }

func (d *Department) BeforeUpdate(tx *gorm.DB) error {
	d.DepartmentUpdatedAt = time.Now().UTC()
	return nil
}

// HasCheckinRules true bila minimal satu aturan sudah dikonfigurasi (bukan NULL semua)
func (d *Department) HasCheckinRules() bool {
	return d.DepartmentRequireLocationPhoto != nil ||
		d.DepartmentRequireBiometricPhoto != nil ||
		d.DepartmentRequireCheckoutLocation != nil
}
