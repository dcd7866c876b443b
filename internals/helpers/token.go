// file: internals/helpers/token.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (diisi oleh auth middleware)
   ============================================ */

const (
	LocUserID   = "user_id"   // string UUID
	LocUserRole = "user_role" // string
	LocUserName = "user_name" // string
	LocSchoolID = "school_id" // string UUID, bisa kosong sebelum onboarding
)

// GetUserIDFromToken mengambil user_id dari Locals (diisi middleware auth).
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User ID tidak ditemukan di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User ID tidak valid")
	}
	return id, nil
}

// GetSchoolIDFromToken mengambil school_id aktif dari Locals.
// Error 403 kalau user belum terhubung ke sekolah (belum onboarding).
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocSchoolID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun belum terhubung ke sekolah manapun")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "School ID di token tidak valid")
	}
	return id, nil
}

// GetRoleFromToken mengambil role dari Locals.
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals(LocUserRole).(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Role tidak ditemukan")
	}
	return role, nil
}
