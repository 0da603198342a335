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

type ProductHandler struct {
	DB     *gorm.DB
	Loader *loader.Loader
	Cache  *cache.Store
}

func NewProductHandler(db *gorm.DB, l *loader.Loader, c *cache.Store) *ProductHandler {
	return &ProductHandler{DB: db, Loader: l, Cache: c}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := loader.ProductFilter{
		Category: strings.TrimSpace(c.Query("cat")),
	}
	if v := c.Query("featured"); v != "" {
		feat := v == "true" || v == "1"
		filter.Featured = &feat
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Loader.Products(c.Context(), filter),
	})
}

type ProductCreateReq struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       int64             `json:"price"`
	Images      []string          `json:"images"`
	Category    string            `json:"category"`
	Stock       int               `json:"stock"`
	Featured    bool              `json:"featured"`
	ProductType string            `json:"productType"`
	Platforms   map[string]string `json:"platforms"`
}

var productIDRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}[a-z0-9]$`)

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	if h.DB == nil {
		return dbDown(c)
	}

	var req ProductCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	id := strings.TrimSpace(req.ID)

	errs := FieldErrors{}
	if id == "" {
		errs.Add("id", "ID produk wajib diisi")
	} else if !productIDRe.MatchString(id) {
		errs.Add("id", "ID produk hanya huruf kecil, angka, dan tanda minus")
	}
	if strings.TrimSpace(req.Name) == "" {
		errs.Add("name", "Nama produk wajib diisi")
	}
	if req.Price < 0 {
		errs.Add("price", "Harga tidak boleh negatif")
	}
	if req.Stock < 0 {
		errs.Add("stock", "Stok tidak boleh negatif")
	}
	if req.ProductType != "" && !models.ValidProductType(req.ProductType) {
		errs.Add("productType", "Tipe produk harus physical atau digital")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	// ID dari client: cek duplikat dulu, 409 tanpa menulis apa pun
	var existing models.Product
	err := h.DB.First(&existing, "id = ?", id).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "ID produk sudah dipakai",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return internalErr(c, "products.create", err)
	}

	productType := models.ProductType(req.ProductType)
	if productType == "" {
		productType = models.ProductPhysical
	}

	platforms := datatypes.JSONMap{}
	for name, url := range req.Platforms {
		platforms[name] = url
	}

	product := models.Product{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Images:      datatypes.NewJSONSlice(req.Images),
		Category:    req.Category,
		Stock:       req.Stock,
		Featured:    req.Featured,
		ProductType: productType,
		Platforms:   platforms,
	}

	if err := h.DB.Create(&product).Error; err != nil {
		return internalErr(c, "products.create", err)
	}

	h.Cache.Invalidate(c.Context(), "products")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Produk berhasil disimpan",
		"data":    product,
	})
}
