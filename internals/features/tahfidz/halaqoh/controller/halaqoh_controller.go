package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/tahfidz/halaqoh/dto"
	"tahfidzku_backend/internals/features/tahfidz/halaqoh/model"
	helper "tahfidzku_backend/internals/helpers"
)

var validate = validator.New()

type HalaqohController struct {
	DB *gorm.DB
}

func NewHalaqohController(db *gorm.DB) *HalaqohController {
	return &HalaqohController{DB: db}
}

// POST /api/a/halaqoh
func (ctrl *HalaqohController) Create(c *fiber.Ctx) error {
	var body dto.HalaqohRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	data := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(data).Error; err != nil {
		log.Println("[ERROR] Failed to insert halaqoh:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan halaqoh")
	}

	return helper.JsonCreated(c, "Halaqoh baru berhasil ditambahkan", dto.ToHalaqohResponse(data))
}

// GET /api/u/halaqoh?page=&per_page=
func (ctrl *HalaqohController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.HalaqohModel{}).
		Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung halaqoh:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data halaqoh")
	}

	var list []model.HalaqohModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("nama_halaqoh ASC, id ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		log.Println("[ERROR] Gagal query halaqoh:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data halaqoh")
	}

	out := make([]dto.HalaqohResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.ToHalaqohResponse(&list[i]))
	}
	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar halaqoh ditemukan", out, &pagination)
}

// PUT /api/a/halaqoh/:id
func (ctrl *HalaqohController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.HalaqohRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var existing model.HalaqohModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Halaqoh tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data halaqoh")
	}

	existing.NamaHalaqoh = body.NamaHalaqoh
	existing.IDAsatidz = body.IDAsatidz
	existing.Tingkat = body.Tingkat
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&existing).Error; err != nil {
		log.Println("[ERROR] Failed to update halaqoh:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui halaqoh")
	}

	return helper.JsonUpdated(c, "Halaqoh berhasil diperbarui", dto.ToHalaqohResponse(&existing))
}

// DELETE /api/a/halaqoh/:id
// Hard delete — santri yang masih menunjuk halaqoh ini dibiarkan (back
// reference lemah, di-resolve saat baca).
func (ctrl *HalaqohController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.HalaqohModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete halaqoh:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus halaqoh")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Halaqoh tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Halaqoh berhasil dihapus", fiber.Map{"id": id})
}
