package loader_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/prasetyadi-dev/portal_konten_be/internal/cache"
	"github.com/prasetyadi-dev/portal_konten_be/internal/loader"
	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
	"github.com/prasetyadi-dev/portal_konten_be/internal/seed"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.Feed{}, &models.Story{}, &models.Book{},
		&models.Roadmap{}, &models.Product{},
	))
	return gdb
}

func asJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestEmptyCollectionsReturnSeed(t *testing.T) {
	gdb := testDB(t)
	l := loader.New(gdb, cache.New(nil, time.Minute))
	ctx := context.Background()

	assert.Equal(t, asJSON(t, seed.Feeds()), asJSON(t, l.Feeds(ctx, loader.FeedFilter{})))
	assert.Equal(t, asJSON(t, seed.Stories()), asJSON(t, l.Stories(ctx)))
	assert.Equal(t, asJSON(t, seed.Books()), asJSON(t, l.Books(ctx)))
	assert.Equal(t, asJSON(t, seed.Roadmaps()), asJSON(t, l.Roadmaps(ctx)))
	assert.Equal(t, asJSON(t, seed.Products()), asJSON(t, l.Products(ctx, loader.ProductFilter{})))
}

func TestNilHandleReturnsSeed(t *testing.T) {
	l := loader.New(nil, cache.New(nil, time.Minute))
	ctx := context.Background()

	assert.NotPanics(t, func() {
		assert.Equal(t, asJSON(t, seed.Feeds()), asJSON(t, l.Feeds(ctx, loader.FeedFilter{})))
		assert.Equal(t, asJSON(t, seed.Products()), asJSON(t, l.Products(ctx, loader.ProductFilter{})))
		assert.Equal(t, asJSON(t, seed.Stories()), asJSON(t, l.Stories(ctx)))
	})
}

func TestSeedFallbackRespectsFilter(t *testing.T) {
	l := loader.New(nil, cache.New(nil, time.Minute))

	feeds := l.Feeds(context.Background(), loader.FeedFilter{Category: "Tutorial"})
	require.NotEmpty(t, feeds)
	for _, f := range feeds {
		assert.Equal(t, models.CategoryTutorial, f.Category)
	}

	feat := true
	products := l.Products(context.Background(), loader.ProductFilter{Featured: &feat})
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.True(t, p.Featured)
	}
}

func TestFeedQueryFilter(t *testing.T) {
	gdb := testDB(t)
	require.NoError(t, gdb.Create(&models.Feed{
		ID:       100,
		Title:    "Belajar Goroutine",
		Category: models.CategoryTutorial,
		Lines: datatypes.NewJSONSlice([]models.FeedLine{
			{Role: "q", Text: "Goroutine itu apa?"},
			{Role: "a", Text: "Unit eksekusi ringan yang dikelola runtime Go."},
		}),
		Takeaway: "Goroutine murah, pakai saja.",
	}).Error)
	require.NoError(t, gdb.Create(&models.Feed{
		ID:       101,
		Title:    "Regulasi baru",
		Category: models.CategoryBerita,
		Lines:    datatypes.NewJSONSlice([]models.FeedLine{{Role: "q", Text: "Apa isinya?"}}),
	}).Error)

	l := loader.New(gdb, cache.New(nil, time.Minute))

	got := l.Feeds(context.Background(), loader.FeedFilter{Query: "goroutine"})
	require.Len(t, got, 1)
	assert.Equal(t, uint(100), got[0].ID)

	got = l.Feeds(context.Background(), loader.FeedFilter{Category: "Berita"})
	require.Len(t, got, 1)
	assert.Equal(t, uint(101), got[0].ID)
}

func TestCacheWindowSkipsSecondRoundTrip(t *testing.T) {
	gdb := testDB(t)
	require.NoError(t, gdb.Create(&models.Story{ID: 1, Name: "Uji", Type: models.CategoryBerita}).Error)

	l := loader.New(gdb, cache.New(nil, time.Minute))
	ctx := context.Background()

	first := l.Stories(ctx)
	require.Len(t, first, 1)
	require.Equal(t, "Uji", first[0].Name)

	// data di database berubah; di dalam jendela revalidasi panggilan
	// kedua harus tetap mengembalikan hasil lama dari cache
	require.NoError(t, gdb.Model(&models.Story{}).Where("id = ?", 1).Update("name", "Berubah").Error)

	second := l.Stories(ctx)
	assert.Equal(t, asJSON(t, first), asJSON(t, second))
}

func TestSnapshotServesAfterDBFailure(t *testing.T) {
	gdb := testDB(t)
	require.NoError(t, gdb.Create(&models.Story{ID: 7, Name: "Snap", Type: models.CategoryRiset}).Error)

	store := cache.New(nil, time.Minute)
	l := loader.New(gdb, store)
	ctx := context.Background()

	first := l.Stories(ctx)
	require.Len(t, first, 1)

	require.NoError(t, gdb.Migrator().DropTable(&models.Story{}))
	store.Invalidate(ctx, "stories") // paksa lewati jendela fresh

	second := l.Stories(ctx)
	assert.Equal(t, asJSON(t, first), asJSON(t, second), "snapshot harus dipakai saat query gagal")
}

func TestExpiredWindowRequeries(t *testing.T) {
	gdb := testDB(t)
	require.NoError(t, gdb.Create(&models.Story{ID: 1, Name: "Lama", Type: models.CategoryBerita}).Error)

	l := loader.New(gdb, cache.New(nil, 10*time.Millisecond))
	ctx := context.Background()

	first := l.Stories(ctx)
	require.Len(t, first, 1)

	require.NoError(t, gdb.Model(&models.Story{}).Where("id = ?", 1).Update("name", "Baru").Error)
	time.Sleep(20 * time.Millisecond)

	second := l.Stories(ctx)
	require.Len(t, second, 1)
	assert.Equal(t, "Baru", second[0].Name)
}
