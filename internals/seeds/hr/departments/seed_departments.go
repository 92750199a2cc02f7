package department

import (
	"encoding/json"
	"log"
	"os"

	"absenku_backend/internals/features/hr/masters/model"

	"gorm.io/gorm"
)

type DepartmentSeed struct {
	DepartmentName string `json:"department_name"`
	CompanyName    string `json:"company_name"`
	ProjectName    string `json:"project_name"`

	DepartmentRequireLocationPhoto    *bool `json:"department_require_location_photo"`
	DepartmentRequireBiometricPhoto   *bool `json:"department_require_biometric_photo"`
	DepartmentRequireCheckoutLocation *bool `json:"department_require_checkout_location"`
}

func SeedDepartmentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var departments []DepartmentSeed
	if err := json.Unmarshal(file, &departments); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, d := range departments {
		// company wajib ada duluan (urutan seeding: companies → departments)
		var company model.Company
		if err := db.Where("company_name = ?", d.CompanyName).First(&company).Error; err != nil {
			log.Printf("❌ Company '%s' untuk department '%s' tidak ditemukan, lewati...", d.CompanyName, d.DepartmentName)
			continue
		}

		var existing model.Department
		if err := db.
			Where("department_name = ? AND department_company_id = ?", d.DepartmentName, company.CompanyID).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Department '%s' sudah ada, lewati...", d.DepartmentName)
			continue
		}

		newDepartment := model.Department{
			DepartmentName:                    d.DepartmentName,
			DepartmentCompanyID:               company.CompanyID,
			DepartmentRequireLocationPhoto:    d.DepartmentRequireLocationPhoto,
			DepartmentRequireBiometricPhoto:   d.DepartmentRequireBiometricPhoto,
			DepartmentRequireCheckoutLocation: d.DepartmentRequireCheckoutLocation,
		}

		if d.ProjectName != "" {
			var project model.Project
			if err := db.Where("project_name = ?", d.ProjectName).First(&project).Error; err != nil {
				log.Printf("❌ Project '%s' untuk department '%s' tidak ditemukan, lewati...", d.ProjectName, d.DepartmentName)
				continue
			}
			newDepartment.DepartmentProjectID = &project.ProjectID
		}

		if err := db.Create(&newDepartment).Error; err != nil {
			log.Printf("❌ Gagal insert department '%s': %v", d.DepartmentName, err)
		} else {
			log.Printf("✅ Berhasil insert department '%s'", d.DepartmentName)
		}
	}
}
