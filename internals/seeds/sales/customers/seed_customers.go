package customer

import (
	"encoding/json"
	"log"
	"os"

	"absenku_backend/internals/features/sales/reference/model"

	"gorm.io/gorm"
)

type CustomerSeed struct {
	CustomerCode        string  `json:"customer_code"`
	CustomerName        string  `json:"customer_name"`
	CustomerEmail       *string `json:"customer_email"`
	CustomerMobile      *string `json:"customer_mobile"`
	CustomerIsBFFMember bool    `json:"customer_is_bff_member"`
	CustomerGroup       *string `json:"customer_group"`
	CustomerTerritory   *string `json:"customer_territory"`
	CustomerDisabled    bool    `json:"customer_disabled"`
}

func SeedCustomersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var customers []CustomerSeed
	if err := json.Unmarshal(file, &customers); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, c := range customers {
		var existing model.Customer
		if err := db.Where("customer_code = ?", c.CustomerCode).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Customer '%s' sudah ada, lewati...", c.CustomerCode)
			continue
		}

		newCustomer := model.Customer{
			CustomerCode:        c.CustomerCode,
			CustomerName:        c.CustomerName,
			CustomerEmail:       c.CustomerEmail,
			CustomerMobile:      c.CustomerMobile,
			CustomerIsBFFMember: c.CustomerIsBFFMember,
			CustomerGroup:       c.CustomerGroup,
			CustomerTerritory:   c.CustomerTerritory,
			CustomerDisabled:    c.CustomerDisabled,
		}

		if err := db.Create(&newCustomer).Error; err != nil {
			log.Printf("❌ Gagal insert customer '%s': %v", c.CustomerCode, err)
		} else {
			log.Printf("✅ Berhasil insert customer '%s' (%s)", c.CustomerCode, c.CustomerName)
		}
	}
}
