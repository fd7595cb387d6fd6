package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/tahfidz/stats/service"
	helper "tahfidzku_backend/internals/helpers"
)

type StatsController struct {
	Service *service.StatsService
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{Service: service.NewStatsService(db)}
}

// GET /api/u/halaqoh/stats
func (ctrl *StatsController) ListHalaqohWithStats(c *fiber.Ctx) error {
	data, err := ctrl.Service.ListHalaqohWithStats(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] gagal hitung stats halaqoh: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data halaqoh")
	}
	return helper.JsonOK(c, "Daftar halaqoh ditemukan", data)
}

// GET /api/u/asatidz/stats
func (ctrl *StatsController) ListAsatidzWithStats(c *fiber.Ctx) error {
	data, err := ctrl.Service.ListAsatidzWithStats(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] gagal hitung stats asatidz: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data asatidz")
	}
	return helper.JsonOK(c, "Daftar asatidz ditemukan", data)
}

// GET /api/u/setoran/enriched?page=&per_page=
func (ctrl *StatsController) ListSetoranEnriched(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	total, err := ctrl.Service.CountSetoran(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] gagal hitung setoran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data setoran")
	}

	data, err := ctrl.Service.ListSetoranEnriched(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		log.Printf("[ERROR] gagal memuat setoran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data setoran")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar setoran ditemukan", data, &pagination)
}

// GET /api/u/absensi/enriched?page=&per_page=
func (ctrl *StatsController) ListAbsensiEnriched(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	total, err := ctrl.Service.CountAbsensi(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] gagal hitung absensi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data absensi")
	}

	data, err := ctrl.Service.ListAbsensiEnriched(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		log.Printf("[ERROR] gagal memuat absensi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data absensi")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar absensi ditemukan", data, &pagination)
}
