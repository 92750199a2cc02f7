// file: internals/features/users/auth/route/auth_route.go
package route

import (
	controller "absenku_backend/internals/features/users/auth/controller"
	rateLimiter "absenku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// ==========================
	// MOBILE AUTH
	// Base: /api/mobile
	// ==========================
	mobileAuth := app.Group("/api/mobile")

	// 🔓 Public — login mobile (limit ketat, brute-force guard)
	mobileAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.MobileLogin)
}
