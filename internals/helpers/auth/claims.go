// file: internals/helpers/auth/claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama locals yang dihydrate oleh middleware AuthJWT.
const (
	LocUserID = "user_id"
	LocGuruID = "guru_id"
	LocRoles  = "roles"
)

// GetUserIDFromToken mengambil user_id (uuid) dari locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocUserID, "User tidak ditemukan di token")
}

// GetGuruIDFromToken mengambil guru_id (uuid) dari locals.
// Error 403 kalau token bukan milik guru (mis. admin murni tanpa profil guru).
func GetGuruIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuidLocal(c, LocGuruID, "")
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun ini tidak memiliki profil guru")
	}
	return id, nil
}

// Roles mengembalikan daftar role dari token ([]string, lowercase).
func Roles(c *fiber.Ctx) []string {
	v := c.Locals(LocRoles)
	switch t := v.(type) {
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok {
				out = append(out, strings.ToLower(strings.TrimSpace(s)))
			}
		}
		return out
	}
	return nil
}

// HasRole cek apakah token membawa role tertentu.
func HasRole(c *fiber.Ctx, role string) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	for _, r := range Roles(c) {
		if r == role {
			return true
		}
	}
	return false
}

func uuidLocal(c *fiber.Ctx, key, msg string) (uuid.UUID, error) {
	if msg == "" {
		msg = "Unauthorized"
	}
	v := c.Locals(key)
	switch t := v.(type) {
	case uuid.UUID:
		if t != uuid.Nil {
			return t, nil
		}
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(t)); err == nil && id != uuid.Nil {
			return id, nil
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
}
