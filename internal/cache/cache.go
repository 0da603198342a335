// Package cache lapisan cache dua tingkat untuk loader: entri "fresh"
// dengan jendela revalidasi pendek, plus "snapshot" hasil query sukses
// terakhir yang dipakai kalau database mendadak gagal. Kalau Redis
// dikonfigurasi, dua tingkat itu juga ditulis ke sana supaya snapshot
// selamat dari restart proses.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	freshPrefix = "portal:fresh:"
	snapPrefix  = "portal:snap:"

	// snapshot disimpan lama; hanya dibaca saat DB error.
	snapTTL = 24 * time.Hour
)

type entry struct {
	data    []byte
	expires time.Time
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration

	mu   sync.RWMutex
	mem  map[string]entry // fresh
	snap map[string][]byte
}

// New membuat store dengan jendela revalidasi ttl. rdb boleh nil.
func New(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{
		rdb:  rdb,
		ttl:  ttl,
		mem:  make(map[string]entry),
		snap: make(map[string][]byte),
	}
}

// GetFresh hasil cache yang masih di dalam jendela revalidasi.
func (s *Store) GetFresh(ctx context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.mem[key]
	s.mu.RUnlock()
	if ok && time.Now().Before(e.expires) {
		return e.data, true
	}
	if s.rdb != nil {
		if b, err := s.rdb.Get(ctx, freshPrefix+key).Bytes(); err == nil {
			return b, true
		}
	}
	return nil, false
}

// GetSnapshot hasil query sukses terakhir, tanpa peduli umurnya.
func (s *Store) GetSnapshot(ctx context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	b, ok := s.snap[key]
	s.mu.RUnlock()
	if ok {
		return b, true
	}
	if s.rdb != nil {
		if b, err := s.rdb.Get(ctx, snapPrefix+key).Bytes(); err == nil {
			return b, true
		}
	}
	return nil, false
}

// Put menyimpan hasil query ke dua tingkat sekaligus.
func (s *Store) Put(ctx context.Context, key string, data []byte) {
	s.mu.Lock()
	s.mem[key] = entry{data: data, expires: time.Now().Add(s.ttl)}
	s.snap[key] = data
	s.mu.Unlock()

	if s.rdb != nil {
		// best effort; cache bukan sumber kebenaran
		s.rdb.Set(ctx, freshPrefix+key, data, s.ttl)
		s.rdb.Set(ctx, snapPrefix+key, data, snapTTL)
	}
}

// Invalidate membuang entri fresh untuk satu domain (mis. "feeds") supaya
// pembacaan berikutnya kena database lagi. Snapshot sengaja dibiarkan.
func (s *Store) Invalidate(ctx context.Context, domain string) {
	s.mu.Lock()
	for k := range s.mem {
		if strings.HasPrefix(k, domain) {
			delete(s.mem, k)
		}
	}
	s.mu.Unlock()

	if s.rdb != nil {
		iter := s.rdb.Scan(ctx, 0, freshPrefix+domain+"*", 100).Iterator()
		for iter.Next(ctx) {
			s.rdb.Del(ctx, iter.Val())
		}
	}
}
