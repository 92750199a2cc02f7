package itemprice

import (
	"encoding/json"
	"log"
	"os"

	"absenku_backend/internals/features/sales/reference/model"

	"gorm.io/gorm"
)

type ItemPriceSeed struct {
	ItemPriceItemCode  string   `json:"item_price_item_code"`
	ItemPricePriceList string   `json:"item_price_price_list"`
	ItemPriceSelling   bool     `json:"item_price_selling"`
	ItemPriceRate      float64  `json:"item_price_rate"`
	ItemPriceBasePrice *float64 `json:"item_price_base_price"`
	ItemPriceWebRetail *float64 `json:"item_price_web_retail_price"`
	ItemPriceMinimum   *float64 `json:"item_price_minimum_sale_price"`
}

func SeedItemPricesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var prices []ItemPriceSeed
	if err := json.Unmarshal(file, &prices); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, p := range prices {
		var existing model.ItemPrice
		if err := db.
			Where("item_price_item_code = ? AND item_price_price_list = ?", p.ItemPriceItemCode, p.ItemPricePriceList).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Harga '%s' di '%s' sudah ada, lewati...", p.ItemPriceItemCode, p.ItemPricePriceList)
			continue
		}

		newPrice := model.ItemPrice{
			ItemPriceItemCode:         p.ItemPriceItemCode,
			ItemPricePriceList:        p.ItemPricePriceList,
			ItemPriceSelling:          p.ItemPriceSelling,
			ItemPriceRate:             p.ItemPriceRate,
			ItemPriceBasePrice:        p.ItemPriceBasePrice,
			ItemPriceWebRetailPrice:   p.ItemPriceWebRetail,
			ItemPriceMinimumSalePrice: p.ItemPriceMinimum,
		}

		if err := db.Create(&newPrice).Error; err != nil {
			log.Printf("❌ Gagal insert harga '%s': %v", p.ItemPriceItemCode, err)
		} else {
			log.Printf("✅ Berhasil insert harga '%s' di '%s'", p.ItemPriceItemCode, p.ItemPricePriceList)
		}
	}
}
