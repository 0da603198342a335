package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prasetyadi-dev/portal_konten_be/internal/cache"
	"github.com/prasetyadi-dev/portal_konten_be/internal/loader"
	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
)

type StoryHandler struct {
	DB     *gorm.DB
	Loader *loader.Loader
	Cache  *cache.Store
}

func NewStoryHandler(db *gorm.DB, l *loader.Loader, c *cache.Store) *StoryHandler {
	return &StoryHandler{DB: db, Loader: l, Cache: c}
}

func (h *StoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Loader.Stories(c.Context()),
	})
}

type StoryCreateReq struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Type    string `json:"type"`
	Palette string `json:"palette"`
	Image   string `json:"image"`
	Viral   bool   `json:"viral"`
}

func (h *StoryHandler) Create(c *fiber.Ctx) error {
	if h.DB == nil {
		return dbDown(c)
	}

	var req StoryCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.Name) == "" {
		errs.Add("name", "Nama wajib diisi")
	}
	if req.Type != "" && !models.ValidFeedCategory(req.Type) {
		errs.Add("type", "Tipe harus Berita, Tutorial, atau Riset")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	story := models.Story{
		Name:    strings.TrimSpace(req.Name),
		Label:   req.Label,
		Type:    models.FeedCategory(req.Type),
		Palette: req.Palette,
		Image:   req.Image,
		Viral:   req.Viral,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var maxID int64
		if err := tx.Model(&models.Story{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}
		story.ID = uint(maxID) + 1
		return tx.Create(&story).Error
	})
	if err != nil {
		return internalErr(c, "stories.create", err)
	}

	h.Cache.Invalidate(c.Context(), "stories")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Story berhasil disimpan",
		"data":    story,
	})
}
