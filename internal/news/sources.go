package news

import "github.com/prasetyadi-dev/portal_konten_be/internal/models"

// Source satu sumber RSS eksternal. Kategori feed hasil normalisasi
// diambil dari konfigurasi sumber, bukan dari isi RSS-nya.
type Source struct {
	Name     string
	URL      string
	Category models.FeedCategory
	// Image fallback kalau item tidak membawa gambar sendiri.
	Image string
}

// DefaultSources sumber bawaan pipeline fetch-news.
func DefaultSources() []Source {
	return []Source{
		{
			Name:     "Antara Tekno",
			URL:      "https://www.antaranews.com/rss/tekno.xml",
			Category: models.CategoryBerita,
			Image:    "https://images.unsplash.com/photo-1504711434969-e33886168f5c",
		},
		{
			Name:     "Dev.to Tutorial",
			URL:      "https://dev.to/feed/tag/tutorial",
			Category: models.CategoryTutorial,
			Image:    "https://images.unsplash.com/photo-1555066931-4365d14bab8c",
		},
		{
			Name:     "arXiv cs.AI",
			URL:      "https://export.arxiv.org/rss/cs.AI",
			Category: models.CategoryRiset,
			Image:    "https://images.unsplash.com/photo-1620712943543-bcc4688e7485",
		},
	}
}
