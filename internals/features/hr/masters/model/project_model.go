// file: internals/features/hr/masters/model/project_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: projects
   ========================= */

type Project struct {
	ProjectID   uuid.UUID `json:"project_id" gorm:"column:project_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectName string    `json:"project_name" gorm:"column:project_name;type:varchar(140);not null"`

	// aturan absensi versi project; NULL = belum dikonfigurasi
	ProjectRequireLocationPhoto    *bool `json:"project_require_location_photo,omitempty" gorm:"column:project_require_location_photo"`
	ProjectRequireBiometricPhoto   *bool `json:"project_require_biometric_photo,omitempty" gorm:"column:project_require_biometric_photo"`
	ProjectRequireCheckoutLocation *bool `json:"project_require_checkout_location,omitempty" gorm:"column:project_require_checkout_location"`

	ProjectCreatedAt time.Time `json:"project_created_at" gorm:"column:project_created_at;type:timestamptz;not null;default:now()"`
	ProjectUpdatedAt time.Time `json:"project_updated_at" gorm:"column:project_updated_at;type:timestamptz;not null;default:now()"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeUpdate(tx *gorm.DB) error {
	p.ProjectUpdatedAt = time.Now().UTC()
	return nil
}

// HasCheckinRules true bila minimal satu aturan sudah dikonfigurasi
func (p *Project) HasCheckinRules() bool {
	return p.ProjectRequireLocationPhoto != nil ||
		p.ProjectRequireBiometricPhoto != nil ||
		p.ProjectRequireCheckoutLocation != nil
}
