// file: internals/features/sales/reference/dto/report_dto_test.go
package dto

import (
	"errors"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func boolPtr(b bool) *bool { return &b }

// parseVia menjalankan ParseReportFilters lewat request asli supaya
// QueryParser dan overlay ?filters= ikut teruji.
func parseVia(t *testing.T, target string) (*ReportFilters, error) {
	t.Helper()
	var (
		got    *ReportFilters
		gotErr error
	)
	app := fiber.New()
	app.Get("/r", func(c *fiber.Ctx) error {
		got, gotErr = ParseReportFilters(c)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return got, gotErr
}

func TestParseReportFilters(t *testing.T) {
	t.Run("tanpa parameter", func(t *testing.T) {
		f, err := parseVia(t, "/r")
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if f.ItemCode != "" || f.Warehouse != "" || f.IncludeZeroStock != nil {
			t.Fatalf("mau kosong, dapat %+v", f)
		}
	})

	t.Run("query param biasa", func(t *testing.T) {
		f, err := parseVia(t, "/r?item_code=ITM-0001&warehouse="+url.QueryEscape("Gudang Utama - AN")+"&include_zero_stock=false")
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if f.ItemCode != "ITM-0001" {
			t.Fatalf("item_code = %q", f.ItemCode)
		}
		if f.Warehouse != "Gudang Utama - AN" {
			t.Fatalf("warehouse = %q", f.Warehouse)
		}
		if f.IncludeZeroStock == nil || *f.IncludeZeroStock {
			t.Fatalf("include_zero_stock = %v", f.IncludeZeroStock)
		}
	})

	t.Run("filters JSON menimpa query param", func(t *testing.T) {
		filters := url.QueryEscape(`{"item_group":"Groceries","price_list":"Standard Selling"}`)
		f, err := parseVia(t, "/r?item_code=ITM-0003&item_group=Beverages&filters="+filters)
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if f.ItemGroup != "Groceries" {
			t.Fatalf("item_group = %q, JSON harus menang", f.ItemGroup)
		}
		if f.PriceList != "Standard Selling" {
			t.Fatalf("price_list = %q", f.PriceList)
		}
		// kunci yang tidak ada di JSON tetap dari query param
		if f.ItemCode != "ITM-0003" {
			t.Fatalf("item_code = %q", f.ItemCode)
		}
	})

	t.Run("filters JSON rusak", func(t *testing.T) {
		_, err := parseVia(t, "/r?filters="+url.QueryEscape(`{bukan-json`))
		var fe *fiber.Error
		if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest || fe.Message != "Invalid filters JSON." {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("query param tidak valid", func(t *testing.T) {
		_, err := parseVia(t, "/r?include_zero_stock=banana")
		var fe *fiber.Error
		if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest || fe.Message != "Invalid query parameters." {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestReportFiltersHelpers(t *testing.T) {
	t.Run("IncludeZero default true", func(t *testing.T) {
		f := &ReportFilters{}
		if !f.IncludeZero() {
			t.Fatal("nil harus dianggap true")
		}
	})

	t.Run("IncludeZero eksplisit", func(t *testing.T) {
		if (&ReportFilters{IncludeZeroStock: boolPtr(false)}).IncludeZero() {
			t.Fatal("false harus tetap false")
		}
		if !(&ReportFilters{IncludeZeroStock: boolPtr(true)}).IncludeZero() {
			t.Fatal("true harus tetap true")
		}
	})

	t.Run("ResolvePriceList", func(t *testing.T) {
		if got := (&ReportFilters{}).ResolvePriceList(); got != DefaultPriceList {
			t.Fatalf("default = %q", got)
		}
		if got := (&ReportFilters{PriceList: "   "}).ResolvePriceList(); got != DefaultPriceList {
			t.Fatalf("spasi = %q", got)
		}
		if got := (&ReportFilters{PriceList: "Standard Selling"}).ResolvePriceList(); got != "Standard Selling" {
			t.Fatalf("eksplisit = %q", got)
		}
	})
}

func TestReportDateFormatting(t *testing.T) {
	d := time.Date(2025, 1, 27, 17, 30, 9, 0, time.UTC)

	if got := FormatDate(d); got == nil || *got != "2025-01-27" {
		t.Fatalf("FormatDate = %v", got)
	}
	if got := FormatDatePtr(nil); got != nil {
		t.Fatalf("FormatDatePtr(nil) = %v", got)
	}
	if got := FormatDatePtr(&d); got == nil || *got != "2025-01-27" {
		t.Fatalf("FormatDatePtr = %v", got)
	}
	if got := FormatDatetime(d); got == nil || *got != "2025-01-27 17:30:09" {
		t.Fatalf("FormatDatetime = %v", got)
	}

	// datetime dinormalisasi ke UTC dulu
	wib := time.FixedZone("WIB", 7*3600)
	if got := FormatDatetime(time.Date(2025, 1, 28, 2, 30, 9, 0, wib)); got == nil || *got != "2025-01-27 19:30:09" {
		t.Fatalf("FormatDatetime WIB = %v", got)
	}
}
