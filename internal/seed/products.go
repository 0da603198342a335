package seed

import (
	"gorm.io/datatypes"

	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
)

var products = []models.Product{
	{
		ID:          "kaos-ngobrol-01",
		Name:        "Kaos \"Ngobrol Dulu, Ngoding Kemudian\"",
		Description: "Katun combed 30s, sablon plastisol.",
		Price:       95000,
		Images:      datatypes.NewJSONSlice([]string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab"}),
		Category:    "Apparel",
		Stock:       24,
		Featured:    true,
		ProductType: models.ProductPhysical,
		Platforms: datatypes.JSONMap{
			"tokopedia": "https://tokopedia.com/portalkonten/kaos-ngobrol",
			"shopee":    "https://shopee.co.id/portalkonten/kaos-ngobrol",
		},
	},
	{
		ID:          "stiker-pack-01",
		Name:        "Paket Stiker Laptop Dev",
		Description: "12 stiker vinyl tahan air.",
		Price:       25000,
		Images:      datatypes.NewJSONSlice([]string{"https://images.unsplash.com/photo-1572375992501-4b0892d50c69"}),
		Category:    "Merchandise",
		Stock:       100,
		Featured:    false,
		ProductType: models.ProductPhysical,
		Platforms:   datatypes.JSONMap{"tokopedia": "https://tokopedia.com/portalkonten/stiker-pack"},
	},
	{
		ID:          "ebook-go-dasar",
		Name:        "E-book Dasar Go (PDF)",
		Description: "Versi digital, 182 halaman, update gratis.",
		Price:       49000,
		Images:      datatypes.NewJSONSlice([]string{"https://images.unsplash.com/photo-1532012197267-da84d127e765"}),
		Category:    "Digital",
		Stock:       9999,
		Featured:    true,
		ProductType: models.ProductDigital,
		Platforms:   datatypes.JSONMap{},
	},
	{
		ID:          "mug-takeaway",
		Name:        "Mug Takeaway of the Day",
		Description: "Keramik 325ml, microwave safe.",
		Price:       65000,
		Images:      datatypes.NewJSONSlice([]string{"https://images.unsplash.com/photo-1514228742587-6b1558fcca3d"}),
		Category:    "Merchandise",
		Stock:       40,
		Featured:    false,
		ProductType: models.ProductPhysical,
		Platforms:   datatypes.JSONMap{"shopee": "https://shopee.co.id/portalkonten/mug-takeaway"},
	},
}

func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}
