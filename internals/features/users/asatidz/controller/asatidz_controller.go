package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/users/asatidz/dto"
	"tahfidzku_backend/internals/features/users/asatidz/service"
	helper "tahfidzku_backend/internals/helpers"
)

var validate = validator.New()

type AsatidzController struct {
	Service *service.ProvisioningService
}

func NewAsatidzController(db *gorm.DB) *AsatidzController {
	return &AsatidzController{Service: service.NewProvisioningService(db)}
}

// POST /api/a/asatidz
// Provisioning tiga langkah: identity → role grant → profil.
func (ctrl *AsatidzController) Create(c *fiber.Ctx) error {
	var body dto.CreateAsatidzRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	id, err := ctrl.Service.ProvisionAsatidz(c.UserContext(), body.ToInput())
	if err != nil {
		return mapProvisioningError(c, err)
	}

	return helper.JsonCreated(c, "Asatidz berhasil ditambahkan", fiber.Map{"id": id})
}

// POST /api/a/asatidz/:id/repair
// Replay langkah 2–3 untuk identity yang sudah ada (state parsial).
func (ctrl *AsatidzController) Repair(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateAsatidzRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	if err := ctrl.Service.RepairAsatidz(c.UserContext(), id, body.ToInput()); err != nil {
		return mapProvisioningError(c, err)
	}

	return helper.JsonOK(c, "Provisioning asatidz berhasil dilengkapi", fiber.Map{"id": id})
}

// PUT /api/a/asatidz/:id
func (ctrl *AsatidzController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateAsatidzRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	profile, err := ctrl.Service.UpdateAsatidz(c.UserContext(), id, body.ToInput())
	if err != nil {
		return mapProvisioningError(c, err)
	}

	return helper.JsonUpdated(c, "Data asatidz berhasil diperbarui", dto.ToAsatidzResponse(profile))
}

// DELETE /api/a/asatidz/:id
// Soft delete: cabut role + aktif=false. Halaqoh yang menunjuk id ini dibiarkan.
func (ctrl *AsatidzController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.Service.DeactivateAsatidz(c.UserContext(), id); err != nil {
		return mapProvisioningError(c, err)
	}

	return helper.JsonDeleted(c, "Asatidz berhasil dinonaktifkan", fiber.Map{"id": id})
}

// GET /api/a/asatidz/:id
// Raw lookup — nonaktif pun dikembalikan (buat resolve riwayat evaluator).
func (ctrl *AsatidzController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	profile, err := ctrl.Service.GetProfile(c.UserContext(), id)
	if err != nil {
		return mapProvisioningError(c, err)
	}

	return helper.JsonOK(c, "Data asatidz ditemukan", dto.ToAsatidzResponse(profile))
}

// mapProvisioningError menerjemahkan error kind service ke status HTTP.
// Recoverable (conflict, invalid, not found) dibedakan dari operasional
// (storage, provisioning incomplete) — yang terakhir layak retry-with-backoff.
func mapProvisioningError(c *fiber.Ctx, err error) error {
	var incomplete *service.ProvisioningIncompleteError
	switch {
	case errors.Is(err, service.ErrIdentityConflict):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrIdentityInvalid):
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.As(err, &incomplete):
		log.Printf("[ERROR] provisioning incomplete: %v", err)
		// id parsial ikut di response supaya operator bisa lanjut ke repair
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success":    false,
			"message":    "Provisioning belum selesai, jalankan repair",
			"error_code": "PROVISIONING_INCOMPLETE",
			"data": fiber.Map{
				"partial_id":  incomplete.UserID,
				"failed_step": incomplete.Step,
			},
		})
	default:
		log.Printf("[ERROR] asatidz storage error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada storage")
	}
}
