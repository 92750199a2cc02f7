// file: internals/route/details/report_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "absenku_backend/internals/features/sales/reference/controller"
)

// ReportRoutes memasang report referensi penjualan (read-only) di bawah
// group mobile yang sudah terautentikasi.
func ReportRoutes(mobile fiber.Router, db *gorm.DB) {
	reportCtl := reportController.NewReportController(db)

	reports := mobile.Group("/reports")
	reports.Get("/item-stock-and-prices", reportCtl.GetItemStockAndPrices)
	reports.Get("/customers-loyalty-balance", reportCtl.GetCustomersWithLoyaltyBalance)
	reports.Get("/sales-orders", reportCtl.GetSalesOrders)
	reports.Get("/loyalty-point-entries", reportCtl.GetLoyaltyPointsEntries)
}
