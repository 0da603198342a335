// Package loader membaca koleksi konten dengan kaskade fallback:
// cache fresh -> database -> snapshot sukses terakhir -> data seed.
// Loader tidak pernah mengembalikan error; jalur baca selalu degradasi,
// tidak pernah gagal ke pengguna.
package loader

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/prasetyadi-dev/portal_konten_be/internal/cache"
)

type Loader struct {
	db    *gorm.DB // boleh nil: database tidak terkonfigurasi / dial gagal
	cache *cache.Store
}

func New(db *gorm.DB, c *cache.Store) *Loader {
	return &Loader{db: db, cache: c}
}

// load kaskade generik untuk satu domain+filter. Urutan strategi:
//  1. entri cache yang masih fresh
//  2. query database; nol baris dianggap "belum diprovisikan" -> seed
//  3. kalau query error, snapshot sukses terakhir
//  4. data seed
func load[T any](l *Loader, ctx context.Context, key string, fallback func() []T, query func(tx *gorm.DB) ([]T, error)) []T {
	if b, ok := l.cache.GetFresh(ctx, key); ok {
		if out, err := decode[T](b); err == nil {
			return out
		}
	}

	if l.db == nil {
		return fallback()
	}

	out, err := query(l.db.WithContext(ctx))
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("query gagal, coba snapshot")
		if b, ok := l.cache.GetSnapshot(ctx, key); ok {
			if snap, derr := decode[T](b); derr == nil {
				return snap
			}
		}
		return fallback()
	}

	if len(out) == 0 {
		out = fallback()
	}

	if b, merr := json.Marshal(out); merr == nil {
		l.cache.Put(ctx, key, b)
	}
	return out
}

func decode[T any](b []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
