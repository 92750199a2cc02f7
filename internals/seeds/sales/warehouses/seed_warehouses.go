package warehouse

import (
	"encoding/json"
	"log"
	"os"

	"absenku_backend/internals/features/sales/reference/model"

	"gorm.io/gorm"
)

type WarehouseSeed struct {
	WarehouseName    string `json:"warehouse_name"`
	WarehouseCompany string `json:"warehouse_company"`
}

func SeedWarehousesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var warehouses []WarehouseSeed
	if err := json.Unmarshal(file, &warehouses); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, w := range warehouses {
		var existing model.Warehouse
		if err := db.Where("warehouse_name = ?", w.WarehouseName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Warehouse '%s' sudah ada, lewati...", w.WarehouseName)
			continue
		}

		newWarehouse := model.Warehouse{
			WarehouseName:    w.WarehouseName,
			WarehouseCompany: w.WarehouseCompany,
		}

		if err := db.Create(&newWarehouse).Error; err != nil {
			log.Printf("❌ Gagal insert warehouse '%s': %v", w.WarehouseName, err)
		} else {
			log.Printf("✅ Berhasil insert warehouse '%s'", w.WarehouseName)
		}
	}
}
