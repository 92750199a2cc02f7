// file: internals/features/sales/reference/dto/report_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

/* ===================== FILTERS ===================== */

const DefaultPriceList = "Sales Price List"

// ReportFilters: satu struct untuk keempat report; kunci yang tidak relevan
// untuk sebuah report diabaikan. Klien lama mengirim ?filters=<json string>,
// tapi kunci individual sebagai query param biasa juga diterima
// (JSON menimpa query param bila dua-duanya ada).
type ReportFilters struct {
	ItemCode         string `json:"item_code" query:"item_code"`
	ItemGroup        string `json:"item_group" query:"item_group"`
	Warehouse        string `json:"warehouse" query:"warehouse"`
	Company          string `json:"company" query:"company"`
	PriceList        string `json:"price_list" query:"price_list"`
	IncludeZeroStock *bool  `json:"include_zero_stock" query:"include_zero_stock"`

	Customer   string `json:"customer" query:"customer"`
	SalesOrder string `json:"sales_order" query:"sales_order"`
}

func ParseReportFilters(c *fiber.Ctx) (*ReportFilters, error) {
	var f ReportFilters
	if err := c.QueryParser(&f); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters.")
	}
	if raw := strings.TrimSpace(c.Query("filters")); raw != "" {
		if err := sonic.Unmarshal([]byte(raw), &f); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid filters JSON.")
		}
	}
	return &f, nil
}

// IncludeZero: include_zero_stock default true bila tidak dikirim.
func (f *ReportFilters) IncludeZero() bool {
	if f.IncludeZeroStock == nil {
		return true
	}
	return *f.IncludeZeroStock
}

func (f *ReportFilters) ResolvePriceList() string {
	if strings.TrimSpace(f.PriceList) == "" {
		return DefaultPriceList
	}
	return f.PriceList
}

/* ===================== DATE FORMATTING ===================== */

// tanggal polos gaya ERP ("2025-01-27"); datetime pakai spasi, presisi detik
const (
	reportDateLayout     = "2006-01-02"
	reportDatetimeLayout = "2006-01-02 15:04:05"
)

func FormatDate(t time.Time) *string {
	s := t.Format(reportDateLayout)
	return &s
}

func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return FormatDate(*t)
}

func FormatDatetime(t time.Time) *string {
	s := t.UTC().Format(reportDatetimeLayout)
	return &s
}

/* ===================== ROWS ===================== */

type ItemStockRow struct {
	Item                string  `json:"item"`
	ItemName            string  `json:"item_name"`
	ItemGroup           string  `json:"item_group"`
	Warehouse           string  `json:"warehouse"`
	AvailableStock      float64 `json:"available_stock"`
	CurrentSalesPriceWP float64 `json:"current_sales_price_wp"`
	BasePrice           float64 `json:"base_price"`
	WebRetailPrice      float64 `json:"web_retail_price"`
	MinimumSalePrice    float64 `json:"minimum_sale_price"`
}

type CustomerLoyaltyRow struct {
	ID                   string  `json:"id"`
	CustomerName         string  `json:"customer_name"`
	Email                *string `json:"email"`
	Mobile               *string `json:"mobile"`
	CustomIsBFFMember    bool    `json:"custom_is_bff_member"`
	CustomerGroup        *string `json:"customer_group"`
	Territory            *string `json:"territory"`
	Disabled             bool    `json:"disabled"`
	LoyaltyPointsBalance float64 `json:"loyalty_points_balance"`
}

type SalesOrderItemRow struct {
	ItemName         string  `json:"item_name"` // kode baris child, bukan nama item
	ItemCode         string  `json:"item_code"`
	ItemDescription  string  `json:"item_description"`
	Qty              float64 `json:"qty"`
	Rate             float64 `json:"rate"`
	Amount           float64 `json:"amount"`
	DeliveryDate     *string `json:"delivery_date"`
	Warehouse        *string `json:"warehouse"`
	UOM              string  `json:"uom"`
	StockUOM         string  `json:"stock_uom"`
	ConversionFactor float64 `json:"conversion_factor"`
}

type SalesOrderTaxRow struct {
	TaxName     string  `json:"tax_name"`
	ChargeType  string  `json:"charge_type"`
	AccountHead string  `json:"account_head"`
	Description *string `json:"description"`
	Rate        float64 `json:"rate"`
	TaxAmount   float64 `json:"tax_amount"`
	Total       float64 `json:"total"`
	CostCenter  *string `json:"cost_center"`
}

type SalesOrderRow struct {
	SalesOrder      string  `json:"sales_order"`
	Customer        string  `json:"customer"`
	CustomerName    string  `json:"customer_name"`
	TransactionDate *string `json:"transaction_date"`
	DeliveryDate    *string `json:"delivery_date"`
	Status          string  `json:"status"`
	GrandTotal      float64 `json:"grand_total"`
	RoundedTotal    float64 `json:"rounded_total"`
	Company         *string `json:"company"`
	Currency        string  `json:"currency"`
	Territory       *string `json:"territory"`
	Docstatus       int     `json:"docstatus"`

	Items []SalesOrderItemRow `json:"items"`
	Taxes []SalesOrderTaxRow  `json:"taxes"`
}

type LoyaltyEntryRow struct {
	Name               string  `json:"name"`
	Customer           string  `json:"customer"`
	LoyaltyPoints      float64 `json:"loyalty_points"`
	LoyaltyProgram     *string `json:"loyalty_program"`
	LoyaltyProgramTier *string `json:"loyalty_program_tier"`
	PostingDate        *string `json:"posting_date"`
	ExpiryDate         *string `json:"expiry_date"`
	InvoiceType        *string `json:"invoice_type"`
	Invoice            *string `json:"invoice"`
	Company            *string `json:"company"`
	Docstatus          int     `json:"docstatus"`
	Creation           *string `json:"creation"`
	Modified           *string `json:"modified"`
}
