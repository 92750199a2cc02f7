// file: internals/features/sales/reference/model/item_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: items
   ========================= */

type Item struct {
	ItemID uuid.UUID `json:"item_id" gorm:"column:item_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// kode item dipakai sebagai kunci join ke bins & item_prices (ekstrak dari ERP pusat)
	ItemCode  string `json:"item_code" gorm:"column:item_code;type:varchar(140);unique;not null"`
	ItemName  string `json:"item_name" gorm:"column:item_name;type:varchar(255);not null"`
	ItemGroup string `json:"item_group" gorm:"column:item_group;type:varchar(140);not null;default:''"`

	ItemDisabled bool `json:"item_disabled" gorm:"column:item_disabled;not null;default:false"`

	ItemCreatedAt time.Time `json:"item_created_at" gorm:"column:item_created_at;type:timestamptz;not null;default:now()"`
	ItemUpdatedAt time.Time `json:"item_updated_at" gorm:"column:item_updated_at;type:timestamptz;not null;default:now()"`
}

func (Item) TableName() string { return "items" }
