// file: internals/route/details/asatidz_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asatidzController "tahfidzku_backend/internals/features/users/asatidz/controller"
)

// Base: /api/a/asatidz — provisioning akun asatidz, khusus Admin.
func AsatidzAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := asatidzController.NewAsatidzController(db)

	r := admin.Group("/asatidz")
	r.Post("/", ctrl.Create)
	r.Post("/:id/repair", ctrl.Repair)
	r.Get("/:id", ctrl.GetByID)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Deactivate)
}
