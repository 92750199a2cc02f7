package employee

import (
	"encoding/json"
	"log"
	"os"

	employeeModel "absenku_backend/internals/features/hr/employee/model"
	mastersModel "absenku_backend/internals/features/hr/masters/model"

	"gorm.io/gorm"
)

type EmployeeSeed struct {
	EmployeeCode         string  `json:"employee_code"`
	EmployeeName         string  `json:"employee_name"`
	EmployeeDesignation  *string `json:"employee_designation"`
	EmployeeCompanyEmail *string `json:"employee_company_email"`
	EmployeeStatus       string  `json:"employee_status"`

	CompanyName    string `json:"company_name"`
	DepartmentName string `json:"department_name"`
	BranchName     string `json:"branch_name"`
	ShiftTypeName  string `json:"shift_type_name"`
}

func SeedEmployeesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var employees []EmployeeSeed
	if err := json.Unmarshal(file, &employees); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, e := range employees {
		var existing employeeModel.Employee
		if err := db.Where("employee_code = ?", e.EmployeeCode).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Employee '%s' sudah ada, lewati...", e.EmployeeCode)
			continue
		}

		var company mastersModel.Company
		if err := db.Where("company_name = ?", e.CompanyName).First(&company).Error; err != nil {
			log.Printf("❌ Company '%s' untuk employee '%s' tidak ditemukan, lewati...", e.CompanyName, e.EmployeeCode)
			continue
		}

		status := e.EmployeeStatus
		if status == "" {
			status = employeeModel.StatusActive
		}

		newEmployee := employeeModel.Employee{
			EmployeeCode:         e.EmployeeCode,
			EmployeeName:         e.EmployeeName,
			EmployeeDesignation:  e.EmployeeDesignation,
			EmployeeCompanyEmail: e.EmployeeCompanyEmail,
			EmployeeStatus:       status,
			EmployeeCompanyID:    company.CompanyID,
		}

		// relasi opsional: cari per nama, kalau kosong biarkan NULL
		if e.DepartmentName != "" {
			var dept mastersModel.Department
			if err := db.
				Where("department_name = ? AND department_company_id = ?", e.DepartmentName, company.CompanyID).
				First(&dept).Error; err != nil {
				log.Printf("⚠️ Department '%s' untuk employee '%s' tidak ditemukan", e.DepartmentName, e.EmployeeCode)
			} else {
				newEmployee.EmployeeDepartmentID = &dept.DepartmentID
			}
		}
		if e.BranchName != "" {
			var br mastersModel.Branch
			if err := db.Where("branch_name = ?", e.BranchName).First(&br).Error; err != nil {
				log.Printf("⚠️ Branch '%s' untuk employee '%s' tidak ditemukan", e.BranchName, e.EmployeeCode)
			} else {
				newEmployee.EmployeeBranchID = &br.BranchID
			}
		}
		if e.ShiftTypeName != "" {
			var shift mastersModel.ShiftType
			if err := db.Where("shift_type_name = ?", e.ShiftTypeName).First(&shift).Error; err != nil {
				log.Printf("⚠️ Shift type '%s' untuk employee '%s' tidak ditemukan", e.ShiftTypeName, e.EmployeeCode)
			} else {
				newEmployee.EmployeeShiftTypeID = &shift.ShiftTypeID
			}
		}

		if err := db.Create(&newEmployee).Error; err != nil {
			log.Printf("❌ Gagal insert employee '%s': %v", e.EmployeeCode, err)
		} else {
			log.Printf("✅ Berhasil insert employee '%s' (%s)", e.EmployeeCode, e.EmployeeName)
		}
	}
}
