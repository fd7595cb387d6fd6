package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/tahfidz/santri/dto"
	"tahfidzku_backend/internals/features/tahfidz/santri/model"
	helper "tahfidzku_backend/internals/helpers"
)

var validate = validator.New()

type SantriController struct {
	DB *gorm.DB
}

func NewSantriController(db *gorm.DB) *SantriController {
	return &SantriController{DB: db}
}

// POST /api/a/santri
func (ctrl *SantriController) Create(c *fiber.Ctx) error {
	var body dto.SantriRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	data := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(data).Error; err != nil {
		log.Println("[ERROR] Failed to insert santri:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan santri")
	}

	return helper.JsonCreated(c, "Santri baru berhasil ditambahkan", dto.ToSantriResponse(data))
}

// GET /api/u/santri?status=Aktif&page=&per_page=
// Dropdown form setoran/absensi hanya butuh santri Aktif — filter opsional.
func (ctrl *SantriController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	status := strings.TrimSpace(c.Query("status"))

	countQ := ctrl.DB.WithContext(c.UserContext()).Model(&model.SantriModel{})
	listQ := ctrl.DB.WithContext(c.UserContext()).Order("nama_santri ASC, id ASC")
	if status != "" {
		countQ = countQ.Where("status = ?", status)
		listQ = listQ.Where("status = ?", status)
	}

	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung santri:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	var list []model.SantriModel
	if err := listQ.Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		log.Println("[ERROR] Gagal query santri:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	out := make([]dto.SantriResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.ToSantriResponse(&list[i]))
	}
	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar santri ditemukan", out, &pagination)
}

// PUT /api/a/santri/:id
func (ctrl *SantriController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.SantriRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var existing model.SantriModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	existing.NamaSantri = body.NamaSantri
	existing.NIS = body.NIS
	if body.Status != "" {
		existing.Status = body.Status
	}
	existing.IDHalaqoh = body.IDHalaqoh
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&existing).Error; err != nil {
		log.Println("[ERROR] Failed to update santri:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui santri")
	}

	return helper.JsonUpdated(c, "Santri berhasil diperbarui", dto.ToSantriResponse(&existing))
}

// DELETE /api/a/santri/:id
func (ctrl *SantriController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.SantriModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete santri:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus santri")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Santri berhasil dihapus", fiber.Map{"id": id})
}
