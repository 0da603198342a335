package news_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
	"github.com/prasetyadi-dev/portal_konten_be/internal/news"
)

const rssBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Uji Feed</title>
<item>
  <title>Artikel Satu</title>
  <link>http://example.com/artikel-1</link>
  <description><![CDATA[<p>Kalimat pertama yang cukup panjang untuk lolos. Kalimat kedua juga tidak kalah panjang.</p>]]></description>
</item>
<item>
  <title>Artikel Dua</title>
  <link>http://example.com/artikel-2</link>
  <description>Deskripsi artikel dua yang juga cukup panjang.</description>
</item>
</channel>
</rss>`

func rssServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func brokenServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAssignsSequentialUniqueIDs(t *testing.T) {
	a := rssServer(t)

	f := news.NewFetcher([]news.Source{
		{Name: "Sumber A", URL: a.URL, Category: models.CategoryBerita, Image: "https://img/a"},
	}, 5*time.Second)

	feeds, results := f.Fetch(context.Background(), 10)

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Error)
	assert.Equal(t, 2, results[0].Fetched)

	require.Len(t, feeds, 2)
	seen := map[uint]bool{}
	prev := uint(9)
	for _, fd := range feeds {
		assert.False(t, seen[fd.ID], "ID harus unik dalam satu batch")
		seen[fd.ID] = true
		assert.Greater(t, fd.ID, prev, "ID harus naik ketat dari startId")
		prev = fd.ID
	}
	assert.Equal(t, uint(10), feeds[0].ID)
}

func TestFetchNormalizesItems(t *testing.T) {
	a := rssServer(t)

	f := news.NewFetcher([]news.Source{
		{Name: "Sumber A", URL: a.URL, Category: models.CategoryTutorial, Image: "https://img/fallback"},
	}, 5*time.Second)

	feeds, _ := f.Fetch(context.Background(), 1)
	require.NotEmpty(t, feeds)

	fd := feeds[0]
	assert.Equal(t, "Artikel Satu", fd.Title)
	assert.Equal(t, models.CategoryTutorial, fd.Category, "kategori dari konfigurasi sumber")
	assert.Equal(t, "https://img/fallback", fd.Image, "item tanpa gambar pakai fallback sumber")
	assert.NotEmpty(t, fd.Takeaway)

	require.NotEmpty(t, fd.Lines)
	assert.Equal(t, "q", fd.Lines[0].Role)
	assert.Equal(t, "Artikel Satu", fd.Lines[0].Text)
	for _, line := range fd.Lines[1:] {
		assert.Equal(t, "a", line.Role)
		assert.NotContains(t, line.Text, "<p>", "HTML harus dibuang")
	}

	require.NotNil(t, fd.Source)
	assert.Equal(t, "Sumber A", fd.Source.Data().Title)
}

func TestFetchIsolatesSourceFailures(t *testing.T) {
	good := rssServer(t)
	notFound := brokenServer(t, http.StatusNotFound, "nope")
	garbage := brokenServer(t, http.StatusOK, "ini bukan xml")

	f := news.NewFetcher([]news.Source{
		{Name: "Bagus", URL: good.URL, Category: models.CategoryBerita},
		{Name: "Hilang", URL: notFound.URL, Category: models.CategoryBerita},
		{Name: "Rusak", URL: garbage.URL, Category: models.CategoryRiset},
	}, 5*time.Second)

	feeds, results := f.Fetch(context.Background(), 1)

	require.Len(t, feeds, 2, "hanya entri dari sumber yang sukses")
	for _, fd := range feeds {
		assert.Equal(t, "Bagus", fd.Source.Data().Title)
	}

	require.Len(t, results, 3)
	byName := map[string]news.SourceResult{}
	for _, r := range results {
		byName[r.Source] = r
	}
	assert.Empty(t, byName["Bagus"].Error)
	assert.Equal(t, 2, byName["Bagus"].Fetched)
	assert.NotEmpty(t, byName["Hilang"].Error)
	assert.NotEmpty(t, byName["Rusak"].Error)
}

func TestFetchAllSourcesFailing(t *testing.T) {
	bad := brokenServer(t, http.StatusNotFound, "")

	f := news.NewFetcher([]news.Source{
		{Name: "Satu", URL: bad.URL, Category: models.CategoryBerita},
		{Name: "Dua", URL: bad.URL + "/lain", Category: models.CategoryRiset},
	}, 5*time.Second)

	feeds, results := f.Fetch(context.Background(), 1)

	assert.Empty(t, feeds)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NotEmpty(t, r.Error)
		assert.Zero(t, r.Fetched)
	}
}

func TestFetchDeduplicatesAcrossSources(t *testing.T) {
	a := rssServer(t)
	b := rssServer(t) // item dengan link sama persis

	f := news.NewFetcher([]news.Source{
		{Name: "A", URL: a.URL, Category: models.CategoryBerita},
		{Name: "B", URL: b.URL, Category: models.CategoryBerita},
	}, 5*time.Second)

	feeds, _ := f.Fetch(context.Background(), 1)
	assert.Len(t, feeds, 2, "link kembar lintas sumber cuma dihitung sekali")
}
