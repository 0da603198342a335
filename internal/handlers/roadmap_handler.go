package handlers

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/prasetyadi-dev/portal_konten_be/internal/cache"
	"github.com/prasetyadi-dev/portal_konten_be/internal/loader"
	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
)

type RoadmapHandler struct {
	DB     *gorm.DB
	Loader *loader.Loader
	Cache  *cache.Store
}

func NewRoadmapHandler(db *gorm.DB, l *loader.Loader, c *cache.Store) *RoadmapHandler {
	return &RoadmapHandler{DB: db, Loader: l, Cache: c}
}

func (h *RoadmapHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Loader.Roadmaps(c.Context()),
	})
}

type RoadmapCreateReq struct {
	Slug     string               `json:"slug"`
	Title    string               `json:"title"`
	Summary  string               `json:"summary"`
	Duration string               `json:"duration"`
	Level    string               `json:"level"`
	Tags     []string             `json:"tags"`
	Image    string               `json:"image"`
	Steps    []models.RoadmapStep `json:"steps"`
}

var slugCleanRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify menurunkan slug dari judul: huruf kecil, non-alfanumerik jadi "-".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugCleanRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func (h *RoadmapHandler) Create(c *fiber.Ctx) error {
	if h.DB == nil {
		return dbDown(c)
	}

	var req RoadmapCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.Title) == "" {
		errs.Add("title", "Judul wajib diisi")
	}
	if req.Level == "" {
		errs.Add("level", "Level wajib diisi")
	} else if !models.ValidRoadmapLevel(req.Level) {
		errs.Add("level", "Level harus Pemula, Menengah, atau Lanjutan")
	}
	if len(req.Steps) == 0 {
		errs.Add("steps", "Minimal satu langkah")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(req.Title)
	}

	var existing models.Roadmap
	err := h.DB.First(&existing, "slug = ?", slug).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Slug sudah dipakai roadmap lain",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return internalErr(c, "roadmaps.create", err)
	}

	roadmap := models.Roadmap{
		Slug:     slug,
		Title:    strings.TrimSpace(req.Title),
		Summary:  req.Summary,
		Duration: req.Duration,
		Level:    models.RoadmapLevel(req.Level),
		Tags:     datatypes.NewJSONSlice(req.Tags),
		Image:    req.Image,
		Steps:    datatypes.NewJSONSlice(req.Steps),
	}

	if err := h.DB.Create(&roadmap).Error; err != nil {
		return internalErr(c, "roadmaps.create", err)
	}

	h.Cache.Invalidate(c.Context(), "roadmaps")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Roadmap berhasil disimpan",
		"data":    roadmap,
	})
}
