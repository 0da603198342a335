// Package seed berisi konten statis yang dipakai sebagai fallback saat
// database tidak bisa diakses atau koleksinya masih kosong. Semua accessor
// mengembalikan salinan supaya slice aslinya tidak bisa diubah caller.
package seed

import (
	"time"

	"gorm.io/datatypes"

	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
)

func srcOf(title, url string) *datatypes.JSONType[models.FeedSource] {
	v := datatypes.NewJSONType(models.FeedSource{Title: title, URL: url})
	return &v
}

var feeds = []models.Feed{
	{
		ID:         1,
		Title:      "Kenapa semua orang tiba-tiba ngomongin AI agent?",
		Category:   models.CategoryBerita,
		Popularity: 92,
		Image:      "https://images.unsplash.com/photo-1677442136019-21780ecad995",
		Lines: datatypes.NewJSONSlice([]models.FeedLine{
			{Role: "q", Text: "Kenapa semua orang tiba-tiba ngomongin AI agent?"},
			{Role: "a", Text: "Karena model bahasa sekarang bisa dipasangi tool dan disuruh menyelesaikan tugas berantai, bukan cuma menjawab satu prompt."},
			{Role: "a", Text: "Perusahaan besar berlomba merilis framework agent, jadi topiknya memenuhi timeline."},
		}),
		Takeaway:  "Agent = LLM + tool + loop perencanaan sederhana.",
		Source:    srcOf("Ars Technica", "https://arstechnica.com"),
		StoryID:   ptr(uint(1)),
		CreatedAt: time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC),
	},
	{
		ID:         2,
		Title:      "Cara deploy aplikasi Go ke VPS dalam 15 menit",
		Category:   models.CategoryTutorial,
		Popularity: 75,
		Image:      "https://images.unsplash.com/photo-1629654297299-c8506221ca97",
		Lines: datatypes.NewJSONSlice([]models.FeedLine{
			{Role: "q", Text: "Deploy aplikasi Go ke VPS susah nggak sih?"},
			{Role: "a", Text: "Gampang. Build binary statis, salin pakai scp, jalankan di belakang systemd."},
			{Role: "a", Text: "Tambahkan Caddy di depannya dan kamu sudah punya HTTPS otomatis."},
		}),
		Takeaway:  "Binary statis + systemd + Caddy sudah cukup untuk produksi kecil.",
		CreatedAt: time.Date(2025, 10, 21, 13, 30, 0, 0, time.UTC),
	},
	{
		ID:         3,
		Title:      "Riset: efek arsitektur mixture-of-experts pada biaya inferensi",
		Category:   models.CategoryRiset,
		Popularity: 61,
		Image:      "https://images.unsplash.com/photo-1620712943543-bcc4688e7485",
		Lines: datatypes.NewJSONSlice([]models.FeedLine{
			{Role: "q", Text: "Apa untungnya mixture-of-experts dibanding model dense?"},
			{Role: "a", Text: "Hanya sebagian kecil parameter yang aktif per token, jadi biaya inferensi turun drastis untuk kapasitas yang sama."},
			{Role: "a", Text: "Makalah terbaru melaporkan penghematan 3-5x dengan kualitas setara."},
		}),
		Takeaway:  "MoE menukar memori dengan komputasi yang jauh lebih murah.",
		Source:    srcOf("arXiv", "https://arxiv.org"),
		CreatedAt: time.Date(2025, 9, 14, 9, 15, 0, 0, time.UTC),
	},
	{
		ID:         4,
		Title:      "Regulasi data center baru: apa artinya buat startup lokal?",
		Category:   models.CategoryBerita,
		Popularity: 48,
		Image:      "https://images.unsplash.com/photo-1558494949-ef010cbdcc31",
		Lines: datatypes.NewJSONSlice([]models.FeedLine{
			{Role: "q", Text: "Regulasi data center baru itu isinya apa?"},
			{Role: "a", Text: "Kewajiban menyimpan data pengguna domestik di dalam negeri untuk kategori layanan tertentu."},
			{Role: "a", Text: "Startup kecil dapat masa transisi dua tahun sebelum wajib patuh."},
		}),
		Takeaway:  "Ada masa transisi, tapi mulai audit lokasi data dari sekarang.",
		CreatedAt: time.Date(2025, 8, 2, 16, 45, 0, 0, time.UTC),
	},
}

func ptr[T any](v T) *T { return &v }

// Feeds mengembalikan salinan seed artikel.
func Feeds() []models.Feed {
	out := make([]models.Feed, len(feeds))
	copy(out, feeds)
	return out
}

// MaxFeedID id terbesar di seed, titik awal penomoran saat database kosong.
func MaxFeedID() uint {
	var max uint
	for _, f := range feeds {
		if f.ID > max {
			max = f.ID
		}
	}
	return max
}
