package bin

import (
	"encoding/json"
	"log"
	"os"

	"absenku_backend/internals/features/sales/reference/model"

	"gorm.io/gorm"
)

type BinSeed struct {
	BinItemCode  string  `json:"bin_item_code"`
	BinWarehouse string  `json:"bin_warehouse"`
	BinActualQty float64 `json:"bin_actual_qty"`
}

func SeedBinsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var bins []BinSeed
	if err := json.Unmarshal(file, &bins); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, b := range bins {
		var existing model.Bin
		if err := db.
			Where("bin_item_code = ? AND bin_warehouse = ?", b.BinItemCode, b.BinWarehouse).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Bin '%s' @ '%s' sudah ada, lewati...", b.BinItemCode, b.BinWarehouse)
			continue
		}

		newBin := model.Bin{
			BinItemCode:  b.BinItemCode,
			BinWarehouse: b.BinWarehouse,
			BinActualQty: b.BinActualQty,
		}

		if err := db.Create(&newBin).Error; err != nil {
			log.Printf("❌ Gagal insert bin '%s' @ '%s': %v", b.BinItemCode, b.BinWarehouse, err)
		} else {
			log.Printf("✅ Berhasil insert bin '%s' @ '%s'", b.BinItemCode, b.BinWarehouse)
		}
	}
}
