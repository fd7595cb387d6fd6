package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/tahfidz/absensi/dto"
	"tahfidzku_backend/internals/features/tahfidz/absensi/model"
	helper "tahfidzku_backend/internals/helpers"
)

var validate = validator.New()

type AbsensiController struct {
	DB *gorm.DB
}

func NewAbsensiController(db *gorm.DB) *AbsensiController {
	return &AbsensiController{DB: db}
}

// POST /api/u/absensi
func (ctrl *AbsensiController) Create(c *fiber.Ctx) error {
	var body dto.AbsensiRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	data, err := body.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(data).Error; err != nil {
		log.Println("[ERROR] Failed to insert absensi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.JsonCreated(c, "Absensi berhasil ditambahkan", dto.ToAbsensiResponse(data))
}

// PUT /api/u/absensi/:id
func (ctrl *AbsensiController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.AbsensiRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var existing model.AbsensiModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	updated, err := body.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := ctrl.DB.WithContext(c.UserContext()).Save(updated).Error; err != nil {
		log.Println("[ERROR] Failed to update absensi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui absensi")
	}

	return helper.JsonUpdated(c, "Absensi berhasil diupdate", dto.ToAbsensiResponse(updated))
}

// DELETE /api/u/absensi/:id
func (ctrl *AbsensiController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.AbsensiModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete absensi:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus absensi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Absensi berhasil dihapus", fiber.Map{"id": id})
}
