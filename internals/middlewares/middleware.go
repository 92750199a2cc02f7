// file: internals/middlewares/middleware.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global untuk semua route.
// Urutan penting: recovery paling luar supaya panic dari middleware
// lain tetap tertangkap, lalu CORS, logger, koneksi DB, dan rate limit.
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(DBMiddleware(db))
	app.Use(GlobalRateLimiter())
}
