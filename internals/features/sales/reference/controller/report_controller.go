// file: internals/features/sales/reference/controller/report_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/features/sales/reference/dto"
	reportService "absenku_backend/internals/features/sales/reference/service"
)

// ReportController: empat report referensi penjualan, semuanya read-only.
// Respons sukses berupa array JSON polos (kontrak klien lama); error dilempar
// ke error handler global.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GET /api/mobile/reports/item-stock-and-prices
func (ctl *ReportController) GetItemStockAndPrices(c *fiber.Ctx) error {
	f, err := dto.ParseReportFilters(c)
	if err != nil {
		return err
	}
	rows, err := reportService.ItemStockAndPrices(ctl.DB, f)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// GET /api/mobile/reports/customers-loyalty-balance
func (ctl *ReportController) GetCustomersWithLoyaltyBalance(c *fiber.Ctx) error {
	f, err := dto.ParseReportFilters(c)
	if err != nil {
		return err
	}
	rows, err := reportService.CustomersWithLoyaltyBalance(ctl.DB, f)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// GET /api/mobile/reports/sales-orders
func (ctl *ReportController) GetSalesOrders(c *fiber.Ctx) error {
	f, err := dto.ParseReportFilters(c)
	if err != nil {
		return err
	}
	rows, err := reportService.SalesOrders(ctl.DB, f)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// GET /api/mobile/reports/loyalty-point-entries
func (ctl *ReportController) GetLoyaltyPointsEntries(c *fiber.Ctx) error {
	f, err := dto.ParseReportFilters(c)
	if err != nil {
		return err
	}
	rows, err := reportService.LoyaltyPointsEntries(ctl.DB, f)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}
