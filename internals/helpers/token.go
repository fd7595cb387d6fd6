package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	authMiddleware "tahfidzku_backend/internals/middlewares/auth"
)

// GetUserIDFromToken mengambil user id (UUID) yang sudah dihydrate AuthJWT.
// Dipakai untuk stamping evaluator pada setoran — id pelaku selalu eksplisit,
// tidak ada session global.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(authMiddleware.LocUserID).(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID di token tidak valid")
	}
	return id, nil
}

// GetRawAccessToken mengambil raw access token dari Authorization header atau cookie.
func GetRawAccessToken(c *fiber.Ctx) string {
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

// GetRefreshTokenFromCookie mengambil refresh token dari cookie (boleh kosong).
func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}
