// file: internals/route/details/mobile_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkinController "absenku_backend/internals/features/hr/checkin/controller"
	employeeController "absenku_backend/internals/features/hr/employee/controller"
	helperOSS "absenku_backend/internals/helpers/oss"
	rateLimiter "absenku_backend/internals/middlewares"
)

// MobileRoutes memasang endpoint absensi mobile pada group yang SUDAH
// diproteksi AuthJWT (Bearer / token api_key:api_secret).
func MobileRoutes(mobile fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	checkinCtl := checkinController.NewCheckinController(db, blob)
	employeeCtl := employeeController.NewEmployeeController(db)

	// 📍 konfigurasi absensi (geofence cabang + aturan foto)
	mobile.Get("/employee-configuration", employeeCtl.GetEmployeeConfiguration)

	// 🕐 absensi masuk/pulang (limit khusus, anti spam double-tap)
	mobile.Post("/checkin", rateLimiter.CheckinRateLimiter(), checkinCtl.CreateCheckin)

	// 📖 riwayat absensi
	mobile.Get("/checkin-records", checkinCtl.GetCheckinRecords)
}
