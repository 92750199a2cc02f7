// file: internals/features/sales/reference/model/loyalty_point_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: loyalty_point_entries
   ========================= */

type LoyaltyPointEntry struct {
	LoyaltyEntryID uuid.UUID `json:"loyalty_entry_id" gorm:"column:loyalty_entry_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// kode publik entri (name pada respons API), mis. "LPE-2025-00001"
	LoyaltyEntryCode     string `json:"loyalty_entry_code" gorm:"column:loyalty_entry_code;type:varchar(140);unique;not null"`
	LoyaltyEntryCustomer string `json:"loyalty_entry_customer" gorm:"column:loyalty_entry_customer;type:varchar(140);not null;index"`

	// poin bisa negatif (redemption)
	LoyaltyEntryPoints float64 `json:"loyalty_entry_points" gorm:"column:loyalty_entry_points;type:double precision;not null;default:0"`

	LoyaltyEntryProgram *string `json:"loyalty_entry_program,omitempty" gorm:"column:loyalty_entry_program;type:varchar(140)"`
	LoyaltyEntryTier    *string `json:"loyalty_entry_tier,omitempty" gorm:"column:loyalty_entry_tier;type:varchar(140)"`

	LoyaltyEntryPostingDate time.Time  `json:"loyalty_entry_posting_date" gorm:"column:loyalty_entry_posting_date;type:date;not null"`
	LoyaltyEntryExpiryDate  *time.Time `json:"loyalty_entry_expiry_date,omitempty" gorm:"column:loyalty_entry_expiry_date;type:date"`

	LoyaltyEntryInvoiceType *string `json:"loyalty_entry_invoice_type,omitempty" gorm:"column:loyalty_entry_invoice_type;type:varchar(140)"`
	LoyaltyEntryInvoice     *string `json:"loyalty_entry_invoice,omitempty" gorm:"column:loyalty_entry_invoice;type:varchar(140)"`
	LoyaltyEntryCompany     *string `json:"loyalty_entry_company,omitempty" gorm:"column:loyalty_entry_company;type:varchar(140)"`

	LoyaltyEntryDocstatus int `json:"loyalty_entry_docstatus" gorm:"column:loyalty_entry_docstatus;not null;default:0"`

	LoyaltyEntryCreatedAt time.Time `json:"loyalty_entry_created_at" gorm:"column:loyalty_entry_created_at;type:timestamptz;not null;default:now()"`
	LoyaltyEntryUpdatedAt time.Time `json:"loyalty_entry_updated_at" gorm:"column:loyalty_entry_updated_at;type:timestamptz;not null;default:now()"`
}

func (LoyaltyPointEntry) TableName() string { return "loyalty_point_entries" }
