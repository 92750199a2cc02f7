// file: internals/features/sales/reference/model/sales_order_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: sales_orders
   ========================= */

type SalesOrder struct {
	SalesOrderID uuid.UUID `json:"sales_order_id" gorm:"column:sales_order_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// kode publik order (mis. "SAL-ORD-2025-00001")
	SalesOrderCode string `json:"sales_order_code" gorm:"column:sales_order_code;type:varchar(140);unique;not null"`

	SalesOrderCustomer     string `json:"sales_order_customer" gorm:"column:sales_order_customer;type:varchar(140);not null;index"`
	SalesOrderCustomerName string `json:"sales_order_customer_name" gorm:"column:sales_order_customer_name;type:varchar(255);not null;default:''"`

	SalesOrderTransactionDate time.Time  `json:"sales_order_transaction_date" gorm:"column:sales_order_transaction_date;type:date;not null"`
	SalesOrderDeliveryDate    *time.Time `json:"sales_order_delivery_date,omitempty" gorm:"column:sales_order_delivery_date;type:date"`

	SalesOrderStatus string `json:"sales_order_status" gorm:"column:sales_order_status;type:varchar(60);not null;default:'Draft'"`

	SalesOrderGrandTotal   float64 `json:"sales_order_grand_total" gorm:"column:sales_order_grand_total;type:double precision;not null;default:0"`
	SalesOrderRoundedTotal float64 `json:"sales_order_rounded_total" gorm:"column:sales_order_rounded_total;type:double precision;not null;default:0"`

	SalesOrderCompany   *string `json:"sales_order_company,omitempty" gorm:"column:sales_order_company;type:varchar(140)"`
	SalesOrderCurrency  string  `json:"sales_order_currency" gorm:"column:sales_order_currency;type:varchar(10);not null;default:'IDR'"`
	SalesOrderTerritory *string `json:"sales_order_territory,omitempty" gorm:"column:sales_order_territory;type:varchar(140)"`

	SalesOrderDocstatus int `json:"sales_order_docstatus" gorm:"column:sales_order_docstatus;not null;default:0"`

	SalesOrderCreatedAt time.Time `json:"sales_order_created_at" gorm:"column:sales_order_created_at;type:timestamptz;not null;default:now()"`
	SalesOrderUpdatedAt time.Time `json:"sales_order_updated_at" gorm:"column:sales_order_updated_at;type:timestamptz;not null;default:now()"`
}

func (SalesOrder) TableName() string { return "sales_orders" }

/* =========================
   Model: sales_order_items (child)
   ========================= */

type SalesOrderItem struct {
	SalesOrderItemID uuid.UUID `json:"sales_order_item_id" gorm:"column:sales_order_item_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	SalesOrderItemOrderID uuid.UUID `json:"sales_order_item_order_id" gorm:"column:sales_order_item_order_id;type:uuid;not null;index"`

	// kode baris untuk respons API (child row name)
	SalesOrderItemRowCode string `json:"sales_order_item_row_code" gorm:"column:sales_order_item_row_code;type:varchar(140);not null"`
	SalesOrderItemIdx     int    `json:"sales_order_item_idx" gorm:"column:sales_order_item_idx;not null;default:1"`

	SalesOrderItemItemCode    string  `json:"sales_order_item_item_code" gorm:"column:sales_order_item_item_code;type:varchar(140);not null"`
	SalesOrderItemDescription string  `json:"sales_order_item_description" gorm:"column:sales_order_item_description;type:varchar(255);not null;default:''"`
	SalesOrderItemQty         float64 `json:"sales_order_item_qty" gorm:"column:sales_order_item_qty;type:double precision;not null;default:0"`
	SalesOrderItemRate        float64 `json:"sales_order_item_rate" gorm:"column:sales_order_item_rate;type:double precision;not null;default:0"`
	SalesOrderItemAmount      float64 `json:"sales_order_item_amount" gorm:"column:sales_order_item_amount;type:double precision;not null;default:0"`

	SalesOrderItemDeliveryDate *time.Time `json:"sales_order_item_delivery_date,omitempty" gorm:"column:sales_order_item_delivery_date;type:date"`
	SalesOrderItemWarehouse    *string    `json:"sales_order_item_warehouse,omitempty" gorm:"column:sales_order_item_warehouse;type:varchar(140)"`

	SalesOrderItemUOM              string  `json:"sales_order_item_uom" gorm:"column:sales_order_item_uom;type:varchar(60);not null;default:'Nos'"`
	SalesOrderItemStockUOM         string  `json:"sales_order_item_stock_uom" gorm:"column:sales_order_item_stock_uom;type:varchar(60);not null;default:'Nos'"`
	SalesOrderItemConversionFactor float64 `json:"sales_order_item_conversion_factor" gorm:"column:sales_order_item_conversion_factor;type:double precision;not null;default:1"`

	SalesOrderItemCreatedAt time.Time `json:"sales_order_item_created_at" gorm:"column:sales_order_item_created_at;type:timestamptz;not null;default:now()"`
}

func (SalesOrderItem) TableName() string { return "sales_order_items" }

func (soi *SalesOrderItem) BeforeCreate(tx *gorm.DB) error {
	if soi.SalesOrderItemRowCode == "" {
		soi.SalesOrderItemRowCode = uuid.NewString()
	}
	return nil
}

/* =========================
   Model: sales_order_taxes (child)
   ========================= */

type SalesOrderTax struct {
	SalesOrderTaxID uuid.UUID `json:"sales_order_tax_id" gorm:"column:sales_order_tax_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	SalesOrderTaxOrderID uuid.UUID `json:"sales_order_tax_order_id" gorm:"column:sales_order_tax_order_id;type:uuid;not null;index"`

	SalesOrderTaxRowCode string `json:"sales_order_tax_row_code" gorm:"column:sales_order_tax_row_code;type:varchar(140);not null"`
	SalesOrderTaxIdx     int    `json:"sales_order_tax_idx" gorm:"column:sales_order_tax_idx;not null;default:1"`

	SalesOrderTaxChargeType  string  `json:"sales_order_tax_charge_type" gorm:"column:sales_order_tax_charge_type;type:varchar(60);not null;default:'On Net Total'"`
	SalesOrderTaxAccountHead string  `json:"sales_order_tax_account_head" gorm:"column:sales_order_tax_account_head;type:varchar(140);not null"`
	SalesOrderTaxDescription *string `json:"sales_order_tax_description,omitempty" gorm:"column:sales_order_tax_description;type:varchar(255)"`

	SalesOrderTaxRate   float64 `json:"sales_order_tax_rate" gorm:"column:sales_order_tax_rate;type:double precision;not null;default:0"`
	SalesOrderTaxAmount float64 `json:"sales_order_tax_amount" gorm:"column:sales_order_tax_amount;type:double precision;not null;default:0"`
	SalesOrderTaxTotal  float64 `json:"sales_order_tax_total" gorm:"column:sales_order_tax_total;type:double precision;not null;default:0"`

	SalesOrderTaxCostCenter *string `json:"sales_order_tax_cost_center,omitempty" gorm:"column:sales_order_tax_cost_center;type:varchar(140)"`

	SalesOrderTaxCreatedAt time.Time `json:"sales_order_tax_created_at" gorm:"column:sales_order_tax_created_at;type:timestamptz;not null;default:now()"`
}

func (SalesOrderTax) TableName() string { return "sales_order_taxes" }

func (sot *SalesOrderTax) BeforeCreate(tx *gorm.DB) error {
	if sot.SalesOrderTaxRowCode == "" {
		sot.SalesOrderTaxRowCode = uuid.NewString()
	}
	return nil
}
