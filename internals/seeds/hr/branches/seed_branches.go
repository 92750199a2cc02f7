package branch

import (
	"encoding/json"
	"log"
	"os"

	"absenku_backend/internals/features/hr/masters/model"

	"gorm.io/gorm"
)

type BranchSeed struct {
	BranchName         string   `json:"branch_name"`
	BranchAddress      *string  `json:"branch_address"`
	BranchLatitude     *float64 `json:"branch_latitude"`
	BranchLongitude    *float64 `json:"branch_longitude"`
	BranchRadiusMeters *float64 `json:"branch_radius_meters"`
}

func SeedBranchesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var branches []BranchSeed
	if err := json.Unmarshal(file, &branches); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, b := range branches {
		var existing model.Branch
		if err := db.Where("branch_name = ?", b.BranchName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Branch '%s' sudah ada, lewati...", b.BranchName)
			continue
		}

		newBranch := model.Branch{
			BranchName:         b.BranchName,
			BranchAddress:      b.BranchAddress,
			BranchLatitude:     b.BranchLatitude,
			BranchLongitude:    b.BranchLongitude,
			BranchRadiusMeters: b.BranchRadiusMeters,
		}

		if err := db.Create(&newBranch).Error; err != nil {
			log.Printf("❌ Gagal insert branch '%s': %v", b.BranchName, err)
		} else {
			log.Printf("✅ Berhasil insert branch '%s'", b.BranchName)
		}
	}
}
