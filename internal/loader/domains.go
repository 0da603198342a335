package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
	"github.com/prasetyadi-dev/portal_konten_be/internal/seed"
)

// FeedFilter filter opsional untuk daftar feed. Query dicocokkan
// case-insensitive terhadap judul, takeaway, dan isi baris chat.
type FeedFilter struct {
	Category string
	Query    string
}

type ProductFilter struct {
	Category string
	Featured *bool
}

func (f FeedFilter) key() string {
	return fmt.Sprintf("feeds|cat=%s|q=%s", f.Category, strings.ToLower(f.Query))
}

func (f ProductFilter) key() string {
	feat := ""
	if f.Featured != nil {
		feat = fmt.Sprintf("%t", *f.Featured)
	}
	return fmt.Sprintf("products|cat=%s|feat=%s", f.Category, feat)
}

func (l *Loader) Feeds(ctx context.Context, filter FeedFilter) []models.Feed {
	return load(l, ctx, filter.key(),
		func() []models.Feed { return filterSeedFeeds(filter) },
		func(tx *gorm.DB) ([]models.Feed, error) {
			q := tx.Model(&models.Feed{}).Order("created_at DESC")
			if filter.Category != "" {
				q = q.Where("category = ?", filter.Category)
			}
			if filter.Query != "" {
				needle := "%" + strings.ToLower(filter.Query) + "%"
				q = q.Where(
					"LOWER(title) LIKE ? OR LOWER(takeaway) LIKE ? OR LOWER(CAST(lines AS TEXT)) LIKE ?",
					needle, needle, needle,
				)
			}
			var out []models.Feed
			err := q.Find(&out).Error
			return out, err
		})
}

func (l *Loader) Stories(ctx context.Context) []models.Story {
	return load(l, ctx, "stories",
		seed.Stories,
		func(tx *gorm.DB) ([]models.Story, error) {
			var out []models.Story
			err := tx.Order("id ASC").Find(&out).Error
			return out, err
		})
}

func (l *Loader) Books(ctx context.Context) []models.Book {
	return load(l, ctx, "books",
		seed.Books,
		func(tx *gorm.DB) ([]models.Book, error) {
			var out []models.Book
			err := tx.Order("id ASC").Find(&out).Error
			return out, err
		})
}

func (l *Loader) Roadmaps(ctx context.Context) []models.Roadmap {
	return load(l, ctx, "roadmaps",
		seed.Roadmaps,
		func(tx *gorm.DB) ([]models.Roadmap, error) {
			var out []models.Roadmap
			err := tx.Order("slug ASC").Find(&out).Error
			return out, err
		})
}

func (l *Loader) Products(ctx context.Context, filter ProductFilter) []models.Product {
	return load(l, ctx, filter.key(),
		func() []models.Product { return filterSeedProducts(filter) },
		func(tx *gorm.DB) ([]models.Product, error) {
			q := tx.Model(&models.Product{}).Order("created_at DESC")
			if filter.Category != "" {
				q = q.Where("category = ?", filter.Category)
			}
			if filter.Featured != nil {
				q = q.Where("featured = ?", *filter.Featured)
			}
			var out []models.Product
			err := q.Find(&out).Error
			return out, err
		})
}

// filter seed mengikuti filter yang sama dengan query supaya caller
// mendapat bentuk jawaban konsisten walau sedang degradasi.
func filterSeedFeeds(filter FeedFilter) []models.Feed {
	out := seed.Feeds()
	if filter.Category != "" {
		out = lo.Filter(out, func(f models.Feed, _ int) bool {
			return string(f.Category) == filter.Category
		})
	}
	if filter.Query != "" {
		needle := strings.ToLower(filter.Query)
		out = lo.Filter(out, func(f models.Feed, _ int) bool {
			if strings.Contains(strings.ToLower(f.Title), needle) ||
				strings.Contains(strings.ToLower(f.Takeaway), needle) {
				return true
			}
			for _, line := range f.Lines {
				if strings.Contains(strings.ToLower(line.Text), needle) {
					return true
				}
			}
			return false
		})
	}
	return out
}

func filterSeedProducts(filter ProductFilter) []models.Product {
	out := seed.Products()
	if filter.Category != "" {
		out = lo.Filter(out, func(p models.Product, _ int) bool {
			return p.Category == filter.Category
		})
	}
	if filter.Featured != nil {
		out = lo.Filter(out, func(p models.Product, _ int) bool {
			return p.Featured == *filter.Featured
		})
	}
	return out
}
