package company

import (
	"encoding/json"
	"log"
	"os"

	"absenku_backend/internals/features/hr/masters/model"

	"gorm.io/gorm"
)

type CompanySeed struct {
	CompanyName                  string `json:"company_name"`
	CompanyUseDepartmentSettings bool   `json:"company_use_department_settings"`
}

func SeedCompaniesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var companies []CompanySeed
	if err := json.Unmarshal(file, &companies); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, c := range companies {
		var existing model.Company
		if err := db.Where("company_name = ?", c.CompanyName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Company '%s' sudah ada, lewati...", c.CompanyName)
			continue
		}

		newCompany := model.Company{
			CompanyName:                  c.CompanyName,
			CompanyUseDepartmentSettings: c.CompanyUseDepartmentSettings,
		}

		if err := db.Create(&newCompany).Error; err != nil {
			log.Printf("❌ Gagal insert company '%s': %v", c.CompanyName, err)
		} else {
			log.Printf("✅ Berhasil insert company '%s'", c.CompanyName)
		}
	}
}
