package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/prasetyadi-dev/portal_konten_be/internal/cache"
	"github.com/prasetyadi-dev/portal_konten_be/internal/config"
	"github.com/prasetyadi-dev/portal_konten_be/internal/db"
	"github.com/prasetyadi-dev/portal_konten_be/internal/handlers"
	"github.com/prasetyadi-dev/portal_konten_be/internal/loader"
	"github.com/prasetyadi-dev/portal_konten_be/internal/middleware"
	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
	"github.com/prasetyadi-dev/portal_konten_be/internal/news"
	"github.com/prasetyadi-dev/portal_konten_be/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	gdb := db.Connect(cfg.DBDSN)
	if gdb != nil {
		if err := gdb.AutoMigrate(
			&models.Feed{}, &models.Story{}, &models.Book{},
			&models.Roadmap{}, &models.Product{}, &models.Category{},
			&models.AdminUser{},
		); err != nil {
			logrus.WithError(err).Fatal("migrasi gagal")
		}
		ensureAdmin(gdb, cfg)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("Redis tidak bisa diakses, cache hanya in-process")
			rdb = nil
		} else {
			logrus.Info("Redis aktif untuk cache snapshot")
		}
	}

	store := cache.New(rdb, cfg.CacheTTL)
	ld := loader.New(gdb, store)
	fetcher := news.NewFetcher(news.DefaultSources(), cfg.NewsTimeout)

	uploader, err := storage.NewUploader(ctx, cfg.Storage)
	if err != nil {
		logrus.WithError(err).Warn("object storage tidak bisa diinisialisasi, endpoint upload mati")
	}

	authH := &handlers.AuthHandler{DB: gdb, JWTSecret: cfg.JWTSecret, Expires: cfg.JWTExpiresMin}
	feedH := handlers.NewFeedHandler(gdb, ld, store)
	storyH := handlers.NewStoryHandler(gdb, ld, store)
	bookH := handlers.NewBookHandler(gdb, ld, store)
	roadmapH := handlers.NewRoadmapHandler(gdb, ld, store)
	productH := handlers.NewProductHandler(gdb, ld, store)
	categoryH := handlers.NewCategoryHandler(gdb, ld)
	newsH := handlers.NewNewsHandler(gdb, fetcher, store)
	uploadH := handlers.NewUploadHandler(uploader)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://127.0.0.1:3000, http://localhost:3000",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	api := app.Group("/api")

	// public
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/feeds", feedH.List)
	api.Get("/stories", storyH.List)
	api.Get("/books", bookH.List)
	api.Get("/roadmaps", roadmapH.List)
	api.Get("/products", productH.List)
	api.Get("/categories", categoryH.GetCategories)

	// admin (JWT cookie)
	admin := api.Group("/", middleware.AdminOnly(cfg.JWTSecret))
	admin.Post("/feeds", feedH.Create)
	admin.Post("/stories", storyH.Create)
	admin.Post("/books", bookH.Create)
	admin.Post("/roadmaps", roadmapH.Create)
	admin.Post("/products", productH.Create)
	admin.Post("/categories", categoryH.Create)
	admin.Post("/fetch-news", newsH.FetchNews)
	admin.Post("/upload/presigned-url",
		limiter.New(limiter.Config{Max: 10, Expiration: time.Minute}),
		uploadH.PresignedURL,
	)

	logrus.WithField("port", cfg.AppPort).Info("portal_konten_be jalan")
	logrus.Fatal(app.Listen(":" + cfg.AppPort))
}

// ensureAdmin membuat akun admin dari env saat belum ada, supaya instance
// baru langsung bisa login tanpa seeding manual.
func ensureAdmin(gdb *gorm.DB, cfg config.Config) {
	if cfg.AdminPassword == "" {
		return
	}

	var count int64
	if err := gdb.Model(&models.AdminUser{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil || count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Warn("gagal hash password admin")
		return
	}

	if err := gdb.Create(&models.AdminUser{
		Username: cfg.AdminUsername,
		Password: string(hash),
	}).Error; err != nil {
		logrus.WithError(err).Warn("gagal membuat akun admin")
		return
	}
	logrus.WithField("username", cfg.AdminUsername).Info("akun admin dibuat")
}
