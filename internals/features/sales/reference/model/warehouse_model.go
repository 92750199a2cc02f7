// file: internals/features/sales/reference/model/warehouse_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: warehouses
   ========================= */

type Warehouse struct {
	WarehouseID      uuid.UUID `json:"warehouse_id" gorm:"column:warehouse_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	WarehouseName    string    `json:"warehouse_name" gorm:"column:warehouse_name;type:varchar(140);unique;not null"`
	WarehouseCompany string    `json:"warehouse_company" gorm:"column:warehouse_company;type:varchar(140);not null;default:''"`

	WarehouseCreatedAt time.Time `json:"warehouse_created_at" gorm:"column:warehouse_created_at;type:timestamptz;not null;default:now()"`
	WarehouseUpdatedAt time.Time `json:"warehouse_updated_at" gorm:"column:warehouse_updated_at;type:timestamptz;not null;default:now()"`
}

func (Warehouse) TableName() string { return "warehouses" }
