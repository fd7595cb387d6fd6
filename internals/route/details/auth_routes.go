// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "tahfidzku_backend/internals/features/users/auth/controller"
	rateLimiter "tahfidzku_backend/internals/middlewares"
)

// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB, authMW fiber.Handler) {
	ac := authController.NewAuthController(db)

	base := app.Group("/api/auth")

	// 🔓 Public
	base.Post("/login", rateLimiter.LoginRateLimiter(), ac.Login)
	base.Post("/register", rateLimiter.RegisterRateLimiter(), ac.Register)
	base.Post("/refresh-token", ac.RefreshToken)
	base.Post("/logout", ac.Logout) // idempotent, aman tanpa JWT

	// 🔐 Protected
	protected := app.Group("/api/auth", authMW)
	protected.Get("/me", ac.Me)
}
