package item

import (
	"encoding/json"
	"log"
	"os"

	"absenku_backend/internals/features/sales/reference/model"

	"gorm.io/gorm"
)

type ItemSeed struct {
	ItemCode     string `json:"item_code"`
	ItemName     string `json:"item_name"`
	ItemGroup    string `json:"item_group"`
	ItemDisabled bool   `json:"item_disabled"`
}

func SeedItemsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var items []ItemSeed
	if err := json.Unmarshal(file, &items); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, i := range items {
		var existing model.Item
		if err := db.Where("item_code = ?", i.ItemCode).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Item '%s' sudah ada, lewati...", i.ItemCode)
			continue
		}

		newItem := model.Item{
			ItemCode:     i.ItemCode,
			ItemName:     i.ItemName,
			ItemGroup:    i.ItemGroup,
			ItemDisabled: i.ItemDisabled,
		}

		if err := db.Create(&newItem).Error; err != nil {
			log.Printf("❌ Gagal insert item '%s': %v", i.ItemCode, err)
		} else {
			log.Printf("✅ Berhasil insert item '%s'", i.ItemCode)
		}
	}
}
