package salesorder

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"absenku_backend/internals/features/sales/reference/model"

	"gorm.io/gorm"
)

type SalesOrderItemSeed struct {
	ItemCode         string  `json:"item_code"`
	Description      string  `json:"description"`
	Qty              float64 `json:"qty"`
	Rate             float64 `json:"rate"`
	Amount           float64 `json:"amount"`
	DeliveryDate     string  `json:"delivery_date"`
	Warehouse        *string `json:"warehouse"`
	UOM              string  `json:"uom"`
	StockUOM         string  `json:"stock_uom"`
	ConversionFactor float64 `json:"conversion_factor"`
}

type SalesOrderTaxSeed struct {
	ChargeType  string  `json:"charge_type"`
	AccountHead string  `json:"account_head"`
	Description *string `json:"description"`
	Rate        float64 `json:"rate"`
	TaxAmount   float64 `json:"tax_amount"`
	Total       float64 `json:"total"`
	CostCenter  *string `json:"cost_center"`
}

type SalesOrderSeed struct {
	SalesOrderCode  string  `json:"sales_order_code"`
	Customer        string  `json:"customer"`
	CustomerName    string  `json:"customer_name"`
	TransactionDate string  `json:"transaction_date"`
	DeliveryDate    string  `json:"delivery_date"`
	Status          string  `json:"status"`
	GrandTotal      float64 `json:"grand_total"`
	RoundedTotal    float64 `json:"rounded_total"`
	Company         *string `json:"company"`
	Currency        string  `json:"currency"`
	Territory       *string `json:"territory"`
	Docstatus       int     `json:"docstatus"`

	Items []SalesOrderItemSeed `json:"items"`
	Taxes []SalesOrderTaxSeed  `json:"taxes"`
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func SeedSalesOrdersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var orders []SalesOrderSeed
	if err := json.Unmarshal(file, &orders); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, o := range orders {
		var existing model.SalesOrder
		if err := db.Where("sales_order_code = ?", o.SalesOrderCode).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Sales order '%s' sudah ada, lewati...", o.SalesOrderCode)
			continue
		}

		txnDate, err := time.Parse("2006-01-02", o.TransactionDate)
		if err != nil {
			log.Printf("❌ Transaction date '%s' tidak valid untuk '%s': %v", o.TransactionDate, o.SalesOrderCode, err)
			continue
		}
		deliveryDate, err := parseDate(o.DeliveryDate)
		if err != nil {
			log.Printf("❌ Delivery date '%s' tidak valid untuk '%s': %v", o.DeliveryDate, o.SalesOrderCode, err)
			continue
		}

		newOrder := model.SalesOrder{
			SalesOrderCode:            o.SalesOrderCode,
			SalesOrderCustomer:        o.Customer,
			SalesOrderCustomerName:    o.CustomerName,
			SalesOrderTransactionDate: txnDate,
			SalesOrderDeliveryDate:    deliveryDate,
			SalesOrderStatus:          o.Status,
			SalesOrderGrandTotal:      o.GrandTotal,
			SalesOrderRoundedTotal:    o.RoundedTotal,
			SalesOrderCompany:         o.Company,
			SalesOrderCurrency:        o.Currency,
			SalesOrderTerritory:       o.Territory,
			SalesOrderDocstatus:       o.Docstatus,
		}

		if err := db.Create(&newOrder).Error; err != nil {
			log.Printf("❌ Gagal insert sales order '%s': %v", o.SalesOrderCode, err)
			continue
		}

		for idx, it := range o.Items {
			itemDelivery, err := parseDate(it.DeliveryDate)
			if err != nil {
				log.Printf("❌ Delivery date item ke-%d tidak valid di '%s': %v", idx+1, o.SalesOrderCode, err)
				continue
			}
			child := model.SalesOrderItem{
				SalesOrderItemOrderID:          newOrder.SalesOrderID,
				SalesOrderItemIdx:              idx + 1,
				SalesOrderItemItemCode:         it.ItemCode,
				SalesOrderItemDescription:      it.Description,
				SalesOrderItemQty:              it.Qty,
				SalesOrderItemRate:             it.Rate,
				SalesOrderItemAmount:           it.Amount,
				SalesOrderItemDeliveryDate:     itemDelivery,
				SalesOrderItemWarehouse:        it.Warehouse,
				SalesOrderItemUOM:              it.UOM,
				SalesOrderItemStockUOM:         it.StockUOM,
				SalesOrderItemConversionFactor: it.ConversionFactor,
			}
			if err := db.Create(&child).Error; err != nil {
				log.Printf("❌ Gagal insert item ke-%d di '%s': %v", idx+1, o.SalesOrderCode, err)
			}
		}

		for idx, tx := range o.Taxes {
			child := model.SalesOrderTax{
				SalesOrderTaxOrderID:     newOrder.SalesOrderID,
				SalesOrderTaxIdx:         idx + 1,
				SalesOrderTaxChargeType:  tx.ChargeType,
				SalesOrderTaxAccountHead: tx.AccountHead,
				SalesOrderTaxDescription: tx.Description,
				SalesOrderTaxRate:        tx.Rate,
				SalesOrderTaxAmount:      tx.TaxAmount,
				SalesOrderTaxTotal:       tx.Total,
				SalesOrderTaxCostCenter:  tx.CostCenter,
			}
			if err := db.Create(&child).Error; err != nil {
				log.Printf("❌ Gagal insert pajak ke-%d di '%s': %v", idx+1, o.SalesOrderCode, err)
			}
		}

		log.Printf("✅ Berhasil insert sales order '%s' (%d item, %d pajak)", o.SalesOrderCode, len(o.Items), len(o.Taxes))
	}
}
