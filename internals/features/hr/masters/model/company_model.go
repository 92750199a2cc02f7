// file: internals/features/hr/masters/model/company_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: companies
   ========================= */

type Company struct {
	CompanyID   uuid.UUID `json:"company_id" gorm:"column:company_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyName string    `json:"company_name" gorm:"column:company_name;type:varchar(140);unique;not null"`

	// true  → aturan absensi diambil dari Department
	// false → aturan absensi diambil dari Project yang tertaut di Department
	CompanyUseDepartmentSettings bool `json:"company_use_department_settings" gorm:"column:company_use_department_settings;not null;default:false"`

	CompanyCreatedAt time.Time `json:"company_created_at" gorm:"column:company_created_at;type:timestamptz;not null;default:now()"`
	CompanyUpdatedAt time.Time `json:"company_updated_at" gorm:"column:company_updated_at;type:timestamptz;not null;default:now()"`
}

func (Company) TableName() string { return "companies" }

func (c *Company) BeforeUpdate(tx *gorm.DB) error {
	c.CompanyUpdatedAt = time.Now().UTC()
	return nil
}
