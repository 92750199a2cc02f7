// file: internals/features/hr/employee/service/employee_resolver.go
package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	employeeModel "absenku_backend/internals/features/hr/employee/model"
	masterModel "absenku_backend/internals/features/hr/masters/model"
)

/* =========================================================
   RESOLVE EMPLOYEE
   ========================================================= */

// ResolveEmployee mencari karyawan dari employee_id eksplisit (uuid atau kode
// publik), atau fallback ke company_email milik caller.
func ResolveEmployee(db *gorm.DB, employeeID, callerEmail, callerName string) (*employeeModel.Employee, error) {
	if employeeID != "" {
		var emp employeeModel.Employee
		q := db
		if id, err := uuid.Parse(employeeID); err == nil {
			q = q.Where("employee_id = ?", id)
		} else {
			q = q.Where("employee_code = ?", employeeID)
		}
		if err := q.First(&emp).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound,
					"Employee not found. Please check the employee ID and try again.")
			}
			return nil, err
		}
		return &emp, nil
	}

	if callerEmail == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("User %s does not have an email address configured.", callerName))
	}

	var emp employeeModel.Employee
	if err := db.Scopes(employeeModel.ScopeByCompanyEmail(callerEmail)).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("Employee not found for user email %s. Please ensure your user account is linked to an employee record.", callerEmail))
		}
		return nil, err
	}
	return &emp, nil
}

// ValidateActiveEmployee menolak transaksi untuk karyawan non-aktif.
func ValidateActiveEmployee(e *employeeModel.Employee) error {
	if !e.IsActive() {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Transactions cannot be created for an %s Employee %s.", e.EmployeeStatus, e.EmployeeCode))
	}
	return nil
}

/* =========================================================
   AGGREGATE (master data yang menempel ke karyawan)
   ========================================================= */

// EmployeeAggregate: karyawan + seluruh master terkait, dimuat sekali
// supaya resolver aturan absensi bisa murni (tanpa query tambahan).
type EmployeeAggregate struct {
	Employee   *employeeModel.Employee
	Company    *masterModel.Company
	Department *masterModel.Department
	Project    *masterModel.Project
	Branch     *masterModel.Branch
	ShiftType  *masterModel.ShiftType
}

// LoadEmployeeAggregate memuat company/department/project/branch/shift karyawan.
// Referensi yang hilang dibiarkan nil; resolver aturan yang memutuskan errornya.
func LoadEmployeeAggregate(db *gorm.DB, e *employeeModel.Employee) (*EmployeeAggregate, error) {
	agg := &EmployeeAggregate{Employee: e}

	var company masterModel.Company
	if err := db.First(&company, "company_id = ?", e.EmployeeCompanyID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		agg.Company = &company
	}

	if e.EmployeeDepartmentID != nil {
		var dept masterModel.Department
		if err := db.First(&dept, "department_id = ?", *e.EmployeeDepartmentID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		} else {
			agg.Department = &dept
		}
	}

	if agg.Department != nil && agg.Department.DepartmentProjectID != nil {
		var project masterModel.Project
		if err := db.First(&project, "project_id = ?", *agg.Department.DepartmentProjectID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		} else {
			agg.Project = &project
		}
	}

	if e.EmployeeBranchID != nil {
		var branch masterModel.Branch
		if err := db.First(&branch, "branch_id = ?", *e.EmployeeBranchID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		} else {
			agg.Branch = &branch
		}
	}

	if e.EmployeeShiftTypeID != nil {
		var shift masterModel.ShiftType
		if err := db.First(&shift, "shift_type_id = ?", *e.EmployeeShiftTypeID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		} else {
			agg.ShiftType = &shift
		}
	}

	return agg, nil
}
