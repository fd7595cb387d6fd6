// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	authRepo "tahfidzku_backend/internals/features/users/auth/repository"
	rateLimiter "tahfidzku_backend/internals/middlewares"
	authMiddleware "tahfidzku_backend/internals/middlewares/auth"
	routeDetails "tahfidzku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// AuthJWT dipakai bersama oleh grup /api/u, /api/a, dan endpoint auth protected.
	authMW := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
		BlacklistChecker: func(raw string) (bool, error) {
			return authRepo.IsTokenBlacklisted(db, raw)
		},
	})

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, authMW)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → rate limit + JWT wajib
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", rateLimiter.GlobalRateLimiter(), authMW)

	// ADMIN → rate limit + JWT + role Admin
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		rateLimiter.GlobalRateLimiter(),
		authMW,
		authMiddleware.RequireRole(constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Asatidz routes...")
	routeDetails.AsatidzAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Tahfidz routes...")
	routeDetails.TahfidzPublicRoutes(public, db)
	routeDetails.TahfidzUserRoutes(private, db)
	routeDetails.TahfidzAdminRoutes(admin, db)
}
