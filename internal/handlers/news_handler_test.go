package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi-dev/portal_konten_be/internal/cache"
	"github.com/prasetyadi-dev/portal_konten_be/internal/handlers"
	"github.com/prasetyadi-dev/portal_konten_be/internal/middleware"
	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
	"github.com/prasetyadi-dev/portal_konten_be/internal/news"
	"github.com/prasetyadi-dev/portal_konten_be/internal/seed"
)

const newsRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Sumber Uji</title>
<item>
  <title>Kabar teknologi terbaru hari ini</title>
  <link>http://example.com/kabar-1</link>
  <description>Ringkasan kabar yang cukup panjang untuk jadi baris jawaban.</description>
</item>
</channel>
</rss>`

func TestFetchNewsPersistsAndContinuesNumbering(t *testing.T) {
	env := newEnv(t, true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(newsRSS))
	}))
	t.Cleanup(srv.Close)

	fetcher := news.NewFetcher([]news.Source{
		{Name: "Sumber Uji", URL: srv.URL, Category: models.CategoryBerita},
	}, 5*time.Second)
	store := cache.New(nil, time.Minute)
	newsH := handlers.NewNewsHandler(env.db, fetcher, store)

	env.app.Post("/api/fetch-news", middleware.AdminOnly(testSecret), newsH.FetchNews)

	resp := doJSON(t, env.app, http.MethodPost, "/api/fetch-news", nil, adminCookie(t))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["fetched"])
	sources := body["sources"].([]any)
	require.Len(t, sources, 1)

	// koleksi kosong: penomoran melanjutkan ID terbesar di seed
	var saved models.Feed
	require.NoError(t, env.db.First(&saved, "title = ?", "Kabar teknologi terbaru hari ini").Error)
	assert.Equal(t, seed.MaxFeedID()+1, saved.ID)

	// run kedua: judul sama sudah ada, tidak ada duplikat tersimpan
	resp = doJSON(t, env.app, http.MethodPost, "/api/fetch-news", nil, adminCookie(t))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(0), body["fetched"])

	var count int64
	require.NoError(t, env.db.Model(&models.Feed{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFetchNewsWithoutCookie(t *testing.T) {
	env := newEnv(t, true)

	fetcher := news.NewFetcher(nil, time.Second)
	store := cache.New(nil, time.Minute)
	newsH := handlers.NewNewsHandler(env.db, fetcher, store)
	env.app.Post("/api/fetch-news", middleware.AdminOnly(testSecret), newsH.FetchNews)

	resp := doJSON(t, env.app, http.MethodPost, "/api/fetch-news", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
