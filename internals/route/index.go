// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/configs"
	authService "absenku_backend/internals/features/users/auth/service"
	helperOSS "absenku_backend/internals/helpers/oss"
	authMiddleware "absenku_backend/internals/middlewares/auth"
	routeDetails "absenku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== AUTH (public) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== BLOB STORAGE FOTO =====================
	blob, err := helperOSS.NewBlobServiceFromEnv("checkin")
	if err != nil {
		log.Printf("[WARN] Init blob storage gagal (%v) — fallback ke disk lokal", err)
		blob, err = helperOSS.NewLocalBlobService("checkin")
		if err != nil {
			log.Fatalf("[ERROR] Init blob storage lokal gagal: %v", err)
		}
	}
	// driver lokal: foto dilayani sebagai static file
	if local, ok := blob.(*helperOSS.LocalBlobService); ok {
		app.Static(local.PublicBase, local.RootDir)
	}

	// ===================== MOBILE (protected) =====================
	// Dua skema auth: "Bearer <jwt>" (sesi login) dan
	// "token <api_key>:<api_secret>" (kredensial hasil mobile_login).
	log.Println("[INFO] Setting up MOBILE group...")
	mobile := app.Group("/api/mobile",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.GetEnv("JWT_SECRET"),
			CredentialChecker:   authService.VerifyAPICredentials(db),
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Setting up MobileRoutes...")
	routeDetails.MobileRoutes(mobile, db, blob)

	log.Println("[INFO] Setting up ReportRoutes...")
	routeDetails.ReportRoutes(mobile, db)
}
