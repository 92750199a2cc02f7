// file: internals/features/sales/reference/service/report_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/features/sales/reference/dto"
	refModel "absenku_backend/internals/features/sales/reference/model"
)

/* =========================================================
   REPORT: item stock & prices
   ========================================================= */

// baris hasil join bins × items × warehouses
type stockScanRow struct {
	Item           string
	ItemName       string
	ItemGroup      string
	Warehouse      string
	AvailableStock float64
}

// ItemStockAndPrices: stok per item × gudang + tingkatan harga jual dari
// price list yang diminta (default "Sales Price List", selling saja).
func ItemStockAndPrices(db *gorm.DB, f *dto.ReportFilters) ([]dto.ItemStockRow, error) {
	q := db.Table("bins AS bin").
		Select("bin.bin_item_code AS item, item.item_name AS item_name, item.item_group AS item_group, bin.bin_warehouse AS warehouse, bin.bin_actual_qty AS available_stock").
		Joins("INNER JOIN items AS item ON item.item_code = bin.bin_item_code").
		Joins("INNER JOIN warehouses AS warehouse ON warehouse.warehouse_name = bin.bin_warehouse").
		Where("item.item_disabled = ?", false)

	if f.ItemCode != "" {
		q = q.Where("bin.bin_item_code = ?", f.ItemCode)
	}
	if f.Warehouse != "" {
		q = q.Where("bin.bin_warehouse = ?", f.Warehouse)
	}
	if f.Company != "" {
		q = q.Where("warehouse.warehouse_company = ?", f.Company)
	}
	if f.ItemGroup != "" {
		q = q.Where("item.item_group = ?", f.ItemGroup)
	}
	if !f.IncludeZero() {
		q = q.Where("bin.bin_actual_qty <> 0")
	}

	var stock []stockScanRow
	if err := q.Order("item.item_code, bin.bin_warehouse").Scan(&stock).Error; err != nil {
		return nil, err
	}

	result := make([]dto.ItemStockRow, 0, len(stock))
	if len(stock) == 0 {
		return result, nil
	}

	codes := make([]string, 0, len(stock))
	seen := map[string]bool{}
	for _, row := range stock {
		if !seen[row.Item] {
			seen[row.Item] = true
			codes = append(codes, row.Item)
		}
	}

	var prices []refModel.ItemPrice
	if err := db.
		Where("item_price_item_code IN ?", codes).
		Where("item_price_price_list = ?", f.ResolvePriceList()).
		Where("item_price_selling = ?", true).
		Find(&prices).Error; err != nil {
		return nil, err
	}
	priceByCode := make(map[string]refModel.ItemPrice, len(prices))
	for _, p := range prices {
		priceByCode[p.ItemPriceItemCode] = p
	}

	for _, row := range stock {
		out := dto.ItemStockRow{
			Item:           row.Item,
			ItemName:       row.ItemName,
			ItemGroup:      row.ItemGroup,
			Warehouse:      row.Warehouse,
			AvailableStock: row.AvailableStock,
		}
		if p, ok := priceByCode[row.Item]; ok {
			out.CurrentSalesPriceWP = p.ItemPriceRate
			out.BasePrice = floatOrZero(p.ItemPriceBasePrice)
			out.WebRetailPrice = floatOrZero(p.ItemPriceWebRetailPrice)
			out.MinimumSalePrice = floatOrZero(p.ItemPriceMinimumSalePrice)
		}
		result = append(result, out)
	}
	return result, nil
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0.0
	}
	return *f
}

/* =========================================================
   REPORT: customers + loyalty balance
   ========================================================= */

type balanceScanRow struct {
	Customer             string
	LoyaltyPointsBalance float64
}

// CustomersWithLoyaltyBalance: pelanggan aktif (filter customer opsional)
// beserta saldo poin loyalti (SUM seluruh entri, redemption negatif ikut).
func CustomersWithLoyaltyBalance(db *gorm.DB, f *dto.ReportFilters) ([]dto.CustomerLoyaltyRow, error) {
	q := db.Where("customer_disabled = ?", false)
	if f.Customer != "" {
		q = q.Where("customer_code = ?", f.Customer)
	}

	var customers []refModel.Customer
	if err := q.Order("customer_name").Find(&customers).Error; err != nil {
		return nil, err
	}

	result := make([]dto.CustomerLoyaltyRow, 0, len(customers))
	if len(customers) == 0 {
		return result, nil
	}

	codes := make([]string, 0, len(customers))
	for _, c := range customers {
		codes = append(codes, c.CustomerCode)
	}

	var balances []balanceScanRow
	if err := db.Model(&refModel.LoyaltyPointEntry{}).
		Select("loyalty_entry_customer AS customer, COALESCE(SUM(loyalty_entry_points), 0) AS loyalty_points_balance").
		Where("loyalty_entry_customer IN ?", codes).
		Group("loyalty_entry_customer").
		Scan(&balances).Error; err != nil {
		return nil, err
	}
	balanceByCode := make(map[string]float64, len(balances))
	for _, b := range balances {
		balanceByCode[b.Customer] = b.LoyaltyPointsBalance
	}

	for _, c := range customers {
		result = append(result, dto.CustomerLoyaltyRow{
			ID:                   c.CustomerCode,
			CustomerName:         c.CustomerName,
			Email:                c.CustomerEmail,
			Mobile:               c.CustomerMobile,
			CustomIsBFFMember:    c.CustomerIsBFFMember,
			CustomerGroup:        c.CustomerGroup,
			Territory:            c.CustomerTerritory,
			Disabled:             c.CustomerDisabled,
			LoyaltyPointsBalance: balanceByCode[c.CustomerCode],
		})
	}
	return result, nil
}

/* =========================================================
   REPORT: sales orders (+ items & taxes)
   ========================================================= */

// SalesOrders: order (semua, atau satu via filter sales_order) lengkap dengan
// child items dan taxes terurut idx. Terbaru dulu.
func SalesOrders(db *gorm.DB, f *dto.ReportFilters) ([]dto.SalesOrderRow, error) {
	q := db.Model(&refModel.SalesOrder{})
	if f.SalesOrder != "" {
		q = q.Where("sales_order_code = ?", f.SalesOrder)
	}

	var orders []refModel.SalesOrder
	if err := q.
		Order("sales_order_transaction_date DESC, sales_order_code DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	result := make([]dto.SalesOrderRow, 0, len(orders))
	if len(orders) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.SalesOrderID)
	}

	var items []refModel.SalesOrderItem
	if err := db.
		Where("sales_order_item_order_id IN ?", ids).
		Order("sales_order_item_order_id, sales_order_item_idx").
		Find(&items).Error; err != nil {
		return nil, err
	}
	var taxes []refModel.SalesOrderTax
	if err := db.
		Where("sales_order_tax_order_id IN ?", ids).
		Order("sales_order_tax_order_id, sales_order_tax_idx").
		Find(&taxes).Error; err != nil {
		return nil, err
	}

	itemsByOrder := map[string][]dto.SalesOrderItemRow{}
	for _, it := range items {
		key := it.SalesOrderItemOrderID.String()
		itemsByOrder[key] = append(itemsByOrder[key], dto.SalesOrderItemRow{
			ItemName:         it.SalesOrderItemRowCode,
			ItemCode:         it.SalesOrderItemItemCode,
			ItemDescription:  it.SalesOrderItemDescription,
			Qty:              it.SalesOrderItemQty,
			Rate:             it.SalesOrderItemRate,
			Amount:           it.SalesOrderItemAmount,
			DeliveryDate:     dto.FormatDatePtr(it.SalesOrderItemDeliveryDate),
			Warehouse:        it.SalesOrderItemWarehouse,
			UOM:              it.SalesOrderItemUOM,
			StockUOM:         it.SalesOrderItemStockUOM,
			ConversionFactor: it.SalesOrderItemConversionFactor,
		})
	}
	taxesByOrder := map[string][]dto.SalesOrderTaxRow{}
	for _, tx := range taxes {
		key := tx.SalesOrderTaxOrderID.String()
		taxesByOrder[key] = append(taxesByOrder[key], dto.SalesOrderTaxRow{
			TaxName:     tx.SalesOrderTaxRowCode,
			ChargeType:  tx.SalesOrderTaxChargeType,
			AccountHead: tx.SalesOrderTaxAccountHead,
			Description: tx.SalesOrderTaxDescription,
			Rate:        tx.SalesOrderTaxRate,
			TaxAmount:   tx.SalesOrderTaxAmount,
			Total:       tx.SalesOrderTaxTotal,
			CostCenter:  tx.SalesOrderTaxCostCenter,
		})
	}

	for _, o := range orders {
		key := o.SalesOrderID.String()
		row := dto.SalesOrderRow{
			SalesOrder:      o.SalesOrderCode,
			Customer:        o.SalesOrderCustomer,
			CustomerName:    o.SalesOrderCustomerName,
			TransactionDate: dto.FormatDate(o.SalesOrderTransactionDate),
			DeliveryDate:    dto.FormatDatePtr(o.SalesOrderDeliveryDate),
			Status:          o.SalesOrderStatus,
			GrandTotal:      o.SalesOrderGrandTotal,
			RoundedTotal:    o.SalesOrderRoundedTotal,
			Company:         o.SalesOrderCompany,
			Currency:        o.SalesOrderCurrency,
			Territory:       o.SalesOrderTerritory,
			Docstatus:       o.SalesOrderDocstatus,
			Items:           itemsByOrder[key],
			Taxes:           taxesByOrder[key],
		}
		if row.Items == nil {
			row.Items = []dto.SalesOrderItemRow{}
		}
		if row.Taxes == nil {
			row.Taxes = []dto.SalesOrderTaxRow{}
		}
		result = append(result, row)
	}
	return result, nil
}

/* =========================================================
   REPORT: loyalty point entries
   ========================================================= */

// LoyaltyPointsEntries: ledger poin loyalti, terbaru dulu
// (filter customer opsional).
func LoyaltyPointsEntries(db *gorm.DB, f *dto.ReportFilters) ([]dto.LoyaltyEntryRow, error) {
	q := db.Model(&refModel.LoyaltyPointEntry{})
	if f.Customer != "" {
		q = q.Where("loyalty_entry_customer = ?", f.Customer)
	}

	var entries []refModel.LoyaltyPointEntry
	if err := q.
		Order("loyalty_entry_posting_date DESC, loyalty_entry_created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	result := make([]dto.LoyaltyEntryRow, 0, len(entries))
	for _, e := range entries {
		result = append(result, dto.LoyaltyEntryRow{
			Name:               e.LoyaltyEntryCode,
			Customer:           e.LoyaltyEntryCustomer,
			LoyaltyPoints:      e.LoyaltyEntryPoints,
			LoyaltyProgram:     e.LoyaltyEntryProgram,
			LoyaltyProgramTier: e.LoyaltyEntryTier,
			PostingDate:        dto.FormatDate(e.LoyaltyEntryPostingDate),
			ExpiryDate:         dto.FormatDatePtr(e.LoyaltyEntryExpiryDate),
			InvoiceType:        e.LoyaltyEntryInvoiceType,
			Invoice:            e.LoyaltyEntryInvoice,
			Company:            e.LoyaltyEntryCompany,
			Docstatus:          e.LoyaltyEntryDocstatus,
			Creation:           dto.FormatDatetime(e.LoyaltyEntryCreatedAt),
			Modified:           dto.FormatDatetime(e.LoyaltyEntryUpdatedAt),
		})
	}
	return result, nil
}
