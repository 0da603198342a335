package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/prasetyadi-dev/portal_konten_be/internal/utils"
)

// CookieName nama cookie sesi admin.
const CookieName = "pk_token"

// AdminOnly membaca token dari cookie dan menaruh identitas admin di
// Locals. Semua endpoint tulis portal lewat sini.
func AdminOnly(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(CookieName)
		if tokenStr == "" {
			return fiber.ErrUnauthorized
		}

		token, err := jwt.ParseWithClaims(tokenStr, &utils.Claims{}, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return fiber.ErrUnauthorized
		}

		claims, ok := token.Claims.(*utils.Claims)
		if !ok {
			return fiber.ErrUnauthorized
		}

		uid := strings.TrimSpace(claims.AdminID)
		if uid == "" {
			return fiber.ErrUnauthorized
		}

		c.Locals("adminId", uid)
		c.Locals("adminUsername", claims.Username)
		return c.Next()
	}
}
