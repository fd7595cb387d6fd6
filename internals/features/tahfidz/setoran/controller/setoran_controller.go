package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/tahfidz/setoran/dto"
	"tahfidzku_backend/internals/features/tahfidz/setoran/model"
	helper "tahfidzku_backend/internals/helpers"
)

var validate = validator.New()

type SetoranController struct {
	DB *gorm.DB
}

func NewSetoranController(db *gorm.DB) *SetoranController {
	return &SetoranController{DB: db}
}

// POST /api/u/setoran
// Evaluator = user di token; tidak ada ambient session, id-nya diteruskan
// eksplisit ke converter.
func (ctrl *SetoranController) Create(c *fiber.Ctx) error {
	evaluatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var body dto.SetoranRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	data, err := body.ToModel(evaluatorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal_setoran tidak valid (YYYY-MM-DD)")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(data).Error; err != nil {
		log.Println("[ERROR] Failed to insert setoran:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan setoran")
	}

	return helper.JsonCreated(c, "Setoran berhasil ditambahkan", dto.ToSetoranResponse(data))
}

// PUT /api/u/setoran/:id
// Koreksi eksplisit atas observasi yang sudah tersimpan; evaluator ikut
// distempel ulang ke user yang mengoreksi.
func (ctrl *SetoranController) Update(c *fiber.Ctx) error {
	evaluatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.SetoranRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var existing model.SetoranModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Setoran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data setoran")
	}

	updated, err := body.ToModel(evaluatorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal_setoran tidak valid (YYYY-MM-DD)")
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := ctrl.DB.WithContext(c.UserContext()).Save(updated).Error; err != nil {
		log.Println("[ERROR] Failed to update setoran:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui setoran")
	}

	return helper.JsonUpdated(c, "Setoran berhasil diupdate", dto.ToSetoranResponse(updated))
}

// DELETE /api/u/setoran/:id
func (ctrl *SetoranController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.SetoranModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete setoran:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus setoran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Setoran tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Setoran berhasil dihapus", fiber.Map{"id": id})
}
