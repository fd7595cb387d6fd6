// file: internals/route/details/tahfidz_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	absensiController "tahfidzku_backend/internals/features/tahfidz/absensi/controller"
	halaqohController "tahfidzku_backend/internals/features/tahfidz/halaqoh/controller"
	santriController "tahfidzku_backend/internals/features/tahfidz/santri/controller"
	setoranController "tahfidzku_backend/internals/features/tahfidz/setoran/controller"
	statsController "tahfidzku_backend/internals/features/tahfidz/stats/controller"
)

// Base: /api/public — daftar halaqoh untuk landing page, tanpa JWT.
func TahfidzPublicRoutes(public fiber.Router, db *gorm.DB) {
	halaqohCtrl := halaqohController.NewHalaqohController(db)

	public.Get("/halaqoh", halaqohCtrl.List)
}

// Base: /api/u — dipakai asatidz sehari-hari (setoran, absensi, rekap).
func TahfidzUserRoutes(private fiber.Router, db *gorm.DB) {
	halaqohCtrl := halaqohController.NewHalaqohController(db)
	santriCtrl := santriController.NewSantriController(db)
	setoranCtrl := setoranController.NewSetoranController(db)
	absensiCtrl := absensiController.NewAbsensiController(db)
	statsCtrl := statsController.NewStatsController(db)

	// Rekap (counts & enriched lists)
	private.Get("/halaqoh/stats", statsCtrl.ListHalaqohWithStats)
	private.Get("/asatidz/stats", statsCtrl.ListAsatidzWithStats)
	private.Get("/setoran/enriched", statsCtrl.ListSetoranEnriched)
	private.Get("/absensi/enriched", statsCtrl.ListAbsensiEnriched)

	// Read-only master data
	private.Get("/halaqoh", halaqohCtrl.List)
	private.Get("/santri", santriCtrl.List)

	// Pencatatan harian
	setoran := private.Group("/setoran")
	setoran.Post("/", setoranCtrl.Create)
	setoran.Put("/:id", setoranCtrl.Update)
	setoran.Delete("/:id", setoranCtrl.Delete)

	absensi := private.Group("/absensi")
	absensi.Post("/", absensiCtrl.Create)
	absensi.Put("/:id", absensiCtrl.Update)
	absensi.Delete("/:id", absensiCtrl.Delete)
}

// Base: /api/a — kelola master data, khusus Admin.
func TahfidzAdminRoutes(admin fiber.Router, db *gorm.DB) {
	halaqohCtrl := halaqohController.NewHalaqohController(db)
	santriCtrl := santriController.NewSantriController(db)

	halaqoh := admin.Group("/halaqoh")
	halaqoh.Post("/", halaqohCtrl.Create)
	halaqoh.Get("/", halaqohCtrl.List)
	halaqoh.Put("/:id", halaqohCtrl.Update)
	halaqoh.Delete("/:id", halaqohCtrl.Delete)

	santri := admin.Group("/santri")
	santri.Post("/", santriCtrl.Create)
	santri.Get("/", santriCtrl.List)
	santri.Put("/:id", santriCtrl.Update)
	santri.Delete("/:id", santriCtrl.Delete)
}
