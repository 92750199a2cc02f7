// file: internals/features/sales/reference/model/item_price_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: item_prices
   ========================= */

type ItemPrice struct {
	ItemPriceID uuid.UUID `json:"item_price_id" gorm:"column:item_price_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ItemPriceItemCode  string `json:"item_price_item_code" gorm:"column:item_price_item_code;type:varchar(140);not null;index"`
	ItemPricePriceList string `json:"item_price_price_list" gorm:"column:item_price_price_list;type:varchar(140);not null"`
	ItemPriceSelling   bool   `json:"item_price_selling" gorm:"column:item_price_selling;not null;default:true"`

	// harga jual utama (price list rate)
	ItemPriceRate float64 `json:"item_price_rate" gorm:"column:item_price_rate;type:double precision;not null;default:0"`

	// tingkatan harga tambahan; NULL → 0.0 di respons
	ItemPriceBasePrice        *float64 `json:"item_price_base_price,omitempty" gorm:"column:item_price_base_price;type:double precision"`
	ItemPriceWebRetailPrice   *float64 `json:"item_price_web_retail_price,omitempty" gorm:"column:item_price_web_retail_price;type:double precision"`
	ItemPriceMinimumSalePrice *float64 `json:"item_price_minimum_sale_price,omitempty" gorm:"column:item_price_minimum_sale_price;type:double precision"`

	ItemPriceCreatedAt time.Time `json:"item_price_created_at" gorm:"column:item_price_created_at;type:timestamptz;not null;default:now()"`
	ItemPriceUpdatedAt time.Time `json:"item_price_updated_at" gorm:"column:item_price_updated_at;type:timestamptz;not null;default:now()"`
}

func (ItemPrice) TableName() string { return "item_prices" }
