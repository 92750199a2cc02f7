package project

import (
	"encoding/json"
	"log"
	"os"

	"absenku_backend/internals/features/hr/masters/model"

	"gorm.io/gorm"
)

type ProjectSeed struct {
	ProjectName                    string `json:"project_name"`
	ProjectRequireLocationPhoto    *bool  `json:"project_require_location_photo"`
	ProjectRequireBiometricPhoto   *bool  `json:"project_require_biometric_photo"`
	ProjectRequireCheckoutLocation *bool  `json:"project_require_checkout_location"`
}

func SeedProjectsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var projects []ProjectSeed
	if err := json.Unmarshal(file, &projects); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, p := range projects {
		var existing model.Project
		if err := db.Where("project_name = ?", p.ProjectName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Project '%s' sudah ada, lewati...", p.ProjectName)
			continue
		}

		newProject := model.Project{
			ProjectName:                    p.ProjectName,
			ProjectRequireLocationPhoto:    p.ProjectRequireLocationPhoto,
			ProjectRequireBiometricPhoto:   p.ProjectRequireBiometricPhoto,
			ProjectRequireCheckoutLocation: p.ProjectRequireCheckoutLocation,
		}

		if err := db.Create(&newProject).Error; err != nil {
			log.Printf("❌ Gagal insert project '%s': %v", p.ProjectName, err)
		} else {
			log.Printf("✅ Berhasil insert project '%s'", p.ProjectName)
		}
	}
}
