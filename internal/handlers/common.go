package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func validationFail(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validasi gagal",
		"errors":  errs,
	})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Body request tidak valid",
	})
}

// dbDown dipakai jalur tulis saat handle database nil. Jalur baca tidak
// pernah ke sini: loader selalu degradasi ke seed.
func dbDown(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"success": false,
		"message": "Database sedang tidak tersedia",
	})
}

// internalErr log detail di server, balas pesan generik ke client.
func internalErr(c *fiber.Ctx, action string, err error) error {
	logrus.WithError(err).WithField("action", action).Error("internal error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Terjadi kesalahan pada server",
	})
}
