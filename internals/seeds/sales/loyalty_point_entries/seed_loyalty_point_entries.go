package loyaltypointentry

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"absenku_backend/internals/features/sales/reference/model"

	"gorm.io/gorm"
)

type LoyaltyPointEntrySeed struct {
	LoyaltyEntryCode        string  `json:"loyalty_entry_code"`
	LoyaltyEntryCustomer    string  `json:"loyalty_entry_customer"`
	LoyaltyEntryPoints      float64 `json:"loyalty_entry_points"`
	LoyaltyEntryProgram     *string `json:"loyalty_entry_program"`
	LoyaltyEntryTier        *string `json:"loyalty_entry_tier"`
	LoyaltyEntryPostingDate string  `json:"loyalty_entry_posting_date"`
	LoyaltyEntryExpiryDate  string  `json:"loyalty_entry_expiry_date"`
	LoyaltyEntryInvoiceType *string `json:"loyalty_entry_invoice_type"`
	LoyaltyEntryInvoice     *string `json:"loyalty_entry_invoice"`
	LoyaltyEntryCompany     *string `json:"loyalty_entry_company"`
	LoyaltyEntryDocstatus   int     `json:"loyalty_entry_docstatus"`
}

func SeedLoyaltyPointEntriesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var entries []LoyaltyPointEntrySeed
	if err := json.Unmarshal(file, &entries); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, e := range entries {
		var existing model.LoyaltyPointEntry
		if err := db.Where("loyalty_entry_code = ?", e.LoyaltyEntryCode).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Loyalty entry '%s' sudah ada, lewati...", e.LoyaltyEntryCode)
			continue
		}

		postingDate, err := time.Parse("2006-01-02", e.LoyaltyEntryPostingDate)
		if err != nil {
			log.Printf("❌ Posting date '%s' tidak valid untuk '%s': %v", e.LoyaltyEntryPostingDate, e.LoyaltyEntryCode, err)
			continue
		}

		newEntry := model.LoyaltyPointEntry{
			LoyaltyEntryCode:        e.LoyaltyEntryCode,
			LoyaltyEntryCustomer:    e.LoyaltyEntryCustomer,
			LoyaltyEntryPoints:      e.LoyaltyEntryPoints,
			LoyaltyEntryProgram:     e.LoyaltyEntryProgram,
			LoyaltyEntryTier:        e.LoyaltyEntryTier,
			LoyaltyEntryPostingDate: postingDate,
			LoyaltyEntryInvoiceType: e.LoyaltyEntryInvoiceType,
			LoyaltyEntryInvoice:     e.LoyaltyEntryInvoice,
			LoyaltyEntryCompany:     e.LoyaltyEntryCompany,
			LoyaltyEntryDocstatus:   e.LoyaltyEntryDocstatus,
		}

		if e.LoyaltyEntryExpiryDate != "" {
			expiry, err := time.Parse("2006-01-02", e.LoyaltyEntryExpiryDate)
			if err != nil {
				log.Printf("❌ Expiry date '%s' tidak valid untuk '%s': %v", e.LoyaltyEntryExpiryDate, e.LoyaltyEntryCode, err)
				continue
			}
			newEntry.LoyaltyEntryExpiryDate = &expiry
		}

		if err := db.Create(&newEntry).Error; err != nil {
			log.Printf("❌ Gagal insert loyalty entry '%s': %v", e.LoyaltyEntryCode, err)
		} else {
			log.Printf("✅ Berhasil insert loyalty entry '%s'", e.LoyaltyEntryCode)
		}
	}
}
