package handlers

import (
	"errors"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prasetyadi-dev/portal_konten_be/internal/loader"
	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
)

type CategoryHandler struct {
	DB     *gorm.DB
	Loader *loader.Loader
}

func NewCategoryHandler(db *gorm.DB, l *loader.Loader) *CategoryHandler {
	return &CategoryHandler{DB: db, Loader: l}
}

// GetCategories gabungan koleksi categories dengan kategori yang terpakai
// produk. Produk diambil lewat loader supaya ikut kaskade fallback:
// database mati pun daftar kategori tetap ada (dari seed).
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	uniq := map[string]bool{}

	if h.DB != nil {
		var stored []string
		if err := h.DB.Model(&models.Category{}).Order("name ASC").Pluck("name", &stored).Error; err == nil {
			for _, name := range stored {
				uniq[name] = true
			}
		}
	}

	for _, p := range h.Loader.Products(c.Context(), loader.ProductFilter{}) {
		if p.Category != "" {
			uniq[p.Category] = true
		}
	}

	categories := make([]string, 0, len(uniq))
	for cat := range uniq {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
	})
}

type CategoryCreateReq struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	if h.DB == nil {
		return dbDown(c)
	}

	var req CategoryCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs := FieldErrors{}
		errs.Add("name", "Nama kategori wajib diisi")
		return validationFail(c, errs)
	}

	var existing models.Category
	err := h.DB.First(&existing, "name = ?", name).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Kategori sudah ada",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return internalErr(c, "categories.create", err)
	}

	category := models.Category{Name: name}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var maxID int64
		if err := tx.Model(&models.Category{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}
		category.ID = uint(maxID) + 1
		return tx.Create(&category).Error
	})
	if err != nil {
		return internalErr(c, "categories.create", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Kategori berhasil disimpan",
		"data":    category,
	})
}
