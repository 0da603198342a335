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

type FeedHandler struct {
	DB     *gorm.DB
	Loader *loader.Loader
	Cache  *cache.Store
}

func NewFeedHandler(db *gorm.DB, l *loader.Loader, c *cache.Store) *FeedHandler {
	return &FeedHandler{DB: db, Loader: l, Cache: c}
}

func (h *FeedHandler) List(c *fiber.Ctx) error {
	feeds := h.Loader.Feeds(c.Context(), loader.FeedFilter{
		Category: strings.TrimSpace(c.Query("cat")),
		Query:    strings.TrimSpace(c.Query("q")),
	})
	return c.JSON(fiber.Map{
		"success": true,
		"data":    feeds,
	})
}

type FeedCreateReq struct {
	Title      string             `json:"title"`
	Category   string             `json:"category"`
	Popularity float64            `json:"popularity"`
	Image      string             `json:"image"`
	Lines      []models.FeedLine  `json:"lines"`
	Takeaway   string             `json:"takeaway"`
	Source     *models.FeedSource `json:"source"`
	StoryID    *uint              `json:"storyId"`
}

func (h *FeedHandler) Create(c *fiber.Ctx) error {
	if h.DB == nil {
		return dbDown(c)
	}

	var req FeedCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.Title) == "" {
		errs.Add("title", "Judul wajib diisi")
	}
	if req.Category == "" {
		errs.Add("category", "Kategori wajib diisi")
	} else if !models.ValidFeedCategory(req.Category) {
		errs.Add("category", "Kategori harus Berita, Tutorial, atau Riset")
	}
	if len(req.Lines) == 0 {
		errs.Add("lines", "Minimal satu baris chat")
	}
	for _, line := range req.Lines {
		if line.Role != "q" && line.Role != "a" {
			errs.Add("lines", "Role baris harus q atau a")
			break
		}
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	feed := models.Feed{
		Title:      strings.TrimSpace(req.Title),
		Category:   models.FeedCategory(req.Category),
		Popularity: req.Popularity,
		Image:      req.Image,
		Lines:      datatypes.NewJSONSlice(req.Lines),
		Takeaway:   strings.TrimSpace(req.Takeaway),
		StoryID:    req.StoryID,
	}
	if req.Source != nil {
		src := datatypes.NewJSONType(*req.Source)
		feed.Source = &src
	}

	// max+1 dan insert dalam satu transaksi supaya POST paralel tidak
	// mencetak ID kembar
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var maxID int64
		if err := tx.Model(&models.Feed{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}
		feed.ID = uint(maxID) + 1
		return tx.Create(&feed).Error
	})
	if err != nil {
		return internalErr(c, "feeds.create", err)
	}

	h.Cache.Invalidate(c.Context(), "feeds")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Artikel berhasil disimpan",
		"data":    feed,
	})
}
