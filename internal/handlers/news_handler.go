package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/prasetyadi-dev/portal_konten_be/internal/cache"
	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
	"github.com/prasetyadi-dev/portal_konten_be/internal/news"
	"github.com/prasetyadi-dev/portal_konten_be/internal/seed"
)

type NewsHandler struct {
	DB      *gorm.DB
	Fetcher *news.Fetcher
	Cache   *cache.Store
}

func NewNewsHandler(db *gorm.DB, f *news.Fetcher, c *cache.Store) *NewsHandler {
	return &NewsHandler{DB: db, Fetcher: f, Cache: c}
}

// FetchNews menjalankan pipeline ingest lalu menyimpan hasilnya.
// Penomoran melanjutkan ID terbesar yang sudah ada; koleksi kosong
// melanjutkan penomoran seed supaya tidak bentrok saat seed ikut tampil.
func (h *NewsHandler) FetchNews(c *fiber.Ctx) error {
	if h.DB == nil {
		return dbDown(c)
	}

	var maxID int64
	if err := h.DB.Model(&models.Feed{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return internalErr(c, "news.fetch", err)
	}
	startID := uint(maxID) + 1
	if maxID == 0 {
		startID = seed.MaxFeedID() + 1
	}

	feeds, results := h.Fetcher.Fetch(c.Context(), startID)

	// dedup terhadap isi database: judul yang sudah ada dilewati
	saved := 0
	for i := range feeds {
		var count int64
		if err := h.DB.Model(&models.Feed{}).Where("title = ?", feeds[i].Title).Count(&count).Error; err != nil {
			return internalErr(c, "news.fetch", err)
		}
		if count > 0 {
			continue
		}
		if err := h.DB.Create(&feeds[i]).Error; err != nil {
			return internalErr(c, "news.fetch", err)
		}
		saved++
	}

	if saved > 0 {
		h.Cache.Invalidate(c.Context(), "feeds")
	}

	ok := 0
	for _, r := range results {
		if r.Error == "" {
			ok++
		}
	}
	logrus.WithFields(logrus.Fields{
		"fetched": len(feeds),
		"saved":   saved,
		"sources": len(results),
	}).Info("fetch-news selesai")

	message := fmt.Sprintf("%d artikel baru dari %d/%d sumber", saved, ok, len(results))
	if ok == 0 {
		message = "Semua sumber gagal, tidak ada artikel baru"
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"fetched": saved,
		"sources": results,
	})
}
