// file: internals/features/hr/employee/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Status kepegawaian
   ========================= */

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusLeft     = "Left"
)

/* =========================
   Model: employees
   ========================= */

type Employee struct {
	EmployeeID uuid.UUID `json:"employee_id" gorm:"column:employee_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// kode publik karyawan (mis. "HR-EMP-00001"); dipakai di seluruh respons API
	EmployeeCode string `json:"employee_code" gorm:"column:employee_code;type:varchar(40);unique;not null"`
	EmployeeName string `json:"employee_name" gorm:"column:employee_name;type:varchar(140);not null"`

	EmployeeDesignation  *string `json:"employee_designation,omitempty" gorm:"column:employee_designation;type:varchar(140)"`
	EmployeeCompanyEmail *string `json:"employee_company_email,omitempty" gorm:"column:employee_company_email;type:varchar(255);unique"`

	EmployeeStatus string `json:"employee_status" gorm:"column:employee_status;type:varchar(20);not null;default:'Active'"`

	EmployeeCompanyID    uuid.UUID  `json:"employee_company_id" gorm:"column:employee_company_id;type:uuid;not null;index"`
	EmployeeDepartmentID *uuid.UUID `json:"employee_department_id,omitempty" gorm:"column:employee_department_id;type:uuid"`
	EmployeeBranchID     *uuid.UUID `json:"employee_branch_id,omitempty" gorm:"column:employee_branch_id;type:uuid"`
	EmployeeShiftTypeID  *uuid.UUID `json:"employee_shift_type_id,omitempty" gorm:"column:employee_shift_type_id;type:uuid"`

	EmployeeCreatedAt time.Time `json:"employee_created_at" gorm:"column:employee_created_at;type:timestamptz;not null;default:now()"`
	EmployeeUpdatedAt time.Time `json:"employee_updated_at" gorm:"column:employee_updated_at;type:timestamptz;not null;default:now()"`
}

func (Employee) TableName() string { return "employees" }

func (e *Employee) BeforeUpdate(tx *gorm.DB) error {
	e.EmployeeUpdatedAt = time.Now().UTC()
	return nil
}

func (e *Employee) IsActive() bool {
	return e.EmployeeStatus == StatusActive
}

/* =========================
   Scopes
   ========================= */

func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("employee_status = ?", StatusActive)
}

func ScopeByCompanyEmail(email string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_company_email = ?", email)
	}
}
