package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/prasetyadi-dev/portal_konten_be/internal/cache"
	"github.com/prasetyadi-dev/portal_konten_be/internal/loader"
	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
)

type BookHandler struct {
	DB     *gorm.DB
	Loader *loader.Loader
	Cache  *cache.Store
}

func NewBookHandler(db *gorm.DB, l *loader.Loader, c *cache.Store) *BookHandler {
	return &BookHandler{DB: db, Loader: l, Cache: c}
}

func (h *BookHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Loader.Books(c.Context()),
	})
}

type BookCreateReq struct {
	Title       string               `json:"title"`
	Author      string               `json:"author"`
	Cover       string               `json:"cover"`
	Genre       string               `json:"genre"`
	Pages       int                  `json:"pages"`
	Rating      float64              `json:"rating"`
	Description string               `json:"description"`
	Chapters    []models.BookChapter `json:"chapters"`
	StoryID     *uint                `json:"storyId"`
}

func (h *BookHandler) Create(c *fiber.Ctx) error {
	if h.DB == nil {
		return dbDown(c)
	}

	var req BookCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.Title) == "" {
		errs.Add("title", "Judul wajib diisi")
	}
	if req.Rating < 0 || req.Rating > 5 {
		errs.Add("rating", "Rating harus 0 sampai 5")
	}
	if req.Pages < 0 {
		errs.Add("pages", "Jumlah halaman tidak boleh negatif")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	book := models.Book{
		Title:       strings.TrimSpace(req.Title),
		Author:      req.Author,
		Cover:       req.Cover,
		Genre:       req.Genre,
		Pages:       req.Pages,
		Rating:      req.Rating,
		Description: req.Description,
		Chapters:    datatypes.NewJSONSlice(req.Chapters),
		StoryID:     req.StoryID,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var maxID int64
		if err := tx.Model(&models.Book{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}
		book.ID = uint(maxID) + 1
		return tx.Create(&book).Error
	})
	if err != nil {
		return internalErr(c, "books.create", err)
	}

	h.Cache.Invalidate(c.Context(), "books")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Buku berhasil disimpan",
		"data":    book,
	})
}
