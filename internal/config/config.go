package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort       string
	DBDSN         string
	RedisAddr     string
	RedisPassword string

	JWTSecret     string
	JWTExpiresMin int

	AdminUsername string
	AdminPassword string

	// CacheTTL jendela revalidasi loader.
	CacheTTL time.Duration

	// NewsTimeout batas waktu fetch per sumber RSS.
	NewsTimeout time.Duration

	Storage StorageConfig
}

// StorageConfig kredensial object storage (S3/R2 compatible) untuk
// presigned upload. Boleh kosong: endpoint upload dimatikan, bukan fatal.
type StorageConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

func (s StorageConfig) Enabled() bool {
	return s.Endpoint != "" && s.AccessKey != "" && s.SecretKey != "" && s.Bucket != ""
}

func Load() Config {
	expires, _ := strconv.Atoi(get("JWT_EXPIRES_MIN", "1440"))
	ttlSec, _ := strconv.Atoi(get("CACHE_TTL_SEC", "120"))
	newsSec, _ := strconv.Atoi(get("NEWS_TIMEOUT_SEC", "10"))

	return Config{
		AppPort:       get("APP_PORT", "8080"),
		DBDSN:         must("DB_DSN"),
		RedisAddr:     get("REDIS_ADDR", ""),
		RedisPassword: get("REDIS_PASSWORD", ""),
		JWTSecret:     must("JWT_SECRET"),
		JWTExpiresMin: expires,
		AdminUsername: get("ADMIN_USERNAME", "admin"),
		AdminPassword: get("ADMIN_PASSWORD", ""),
		CacheTTL:      time.Duration(ttlSec) * time.Second,
		NewsTimeout:   time.Duration(newsSec) * time.Second,
		Storage: StorageConfig{
			Endpoint:      get("STORAGE_ENDPOINT", ""),
			AccessKey:     get("STORAGE_ACCESS_KEY", ""),
			SecretKey:     get("STORAGE_SECRET_KEY", ""),
			Bucket:        get("STORAGE_BUCKET", ""),
			PublicBaseURL: get("STORAGE_PUBLIC_BASE_URL", ""),
		},
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
