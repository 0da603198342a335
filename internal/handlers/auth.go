package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/prasetyadi-dev/portal_konten_be/internal/middleware"
	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
	"github.com/prasetyadi-dev/portal_konten_be/internal/utils"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	Expires   int
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if h.DB == nil {
		return dbDown(c)
	}

	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	password := strings.TrimSpace(req.Password)

	errs := FieldErrors{}
	if username == "" {
		errs.Add("username", "Username wajib diisi")
	}
	if password == "" {
		errs.Add("password", "Password wajib diisi")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	var admin models.AdminUser
	if err := h.DB.First(&admin, "username = ?", username).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Username atau password salah",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Username atau password salah",
		})
	}

	token, err := utils.SignJWT(h.JWTSecret, admin.ID.String(), admin.Username, h.Expires)
	if err != nil {
		return internalErr(c, "auth.login", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(time.Duration(h.Expires) * time.Minute),
	})

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"username": admin.Username,
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{"success": true})
}
