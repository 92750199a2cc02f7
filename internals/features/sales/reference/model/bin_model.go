// file: internals/features/sales/reference/model/bin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: bins (saldo stok per item × gudang)
   ========================= */

type Bin struct {
	BinID uuid.UUID `json:"bin_id" gorm:"column:bin_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	BinItemCode  string `json:"bin_item_code" gorm:"column:bin_item_code;type:varchar(140);not null;uniqueIndex:uq_bins_item_warehouse"`
	BinWarehouse string `json:"bin_warehouse" gorm:"column:bin_warehouse;type:varchar(140);not null;uniqueIndex:uq_bins_item_warehouse"`

	BinActualQty float64 `json:"bin_actual_qty" gorm:"column:bin_actual_qty;type:double precision;not null;default:0"`

	BinCreatedAt time.Time `json:"bin_created_at" gorm:"column:bin_created_at;type:timestamptz;not null;default:now()"`
	BinUpdatedAt time.Time `json:"bin_updated_at" gorm:"column:bin_updated_at;type:timestamptz;not null;default:now()"`
}

func (Bin) TableName() string { return "bins" }
