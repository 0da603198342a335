package seed

import (
	"gorm.io/datatypes"

	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
)

var books = []models.Book{
	{
		ID:          1,
		Title:       "Ngoding Itu Ngobrol",
		Author:      "Tim Redaksi",
		Cover:       "https://images.unsplash.com/photo-1532012197267-da84d127e765",
		Genre:       "Teknologi",
		Pages:       182,
		Rating:      4.6,
		Description: "Pengantar berpikir komputasional lewat format tanya jawab santai.",
		Chapters: datatypes.NewJSONSlice([]models.BookChapter{
			{
				Title: "Kenapa komputer butuh instruksi detail?",
				Lines: []models.FeedLine{
					{Role: "q", Text: "Kenapa komputer nggak bisa nebak maksud kita?"},
					{Role: "a", Text: "Karena komputer hanya mengeksekusi instruksi literal, tanpa konteks."},
				},
			},
			{
				Title: "Abstraksi itu teman",
				Lines: []models.FeedLine{
					{Role: "q", Text: "Apa gunanya abstraksi?"},
					{Role: "a", Text: "Menyembunyikan detail yang tidak perlu supaya kita bisa fokus ke masalah."},
				},
			},
		}),
		StoryID: ptr(uint(2)),
	},
	{
		ID:          2,
		Title:       "Data untuk Semua",
		Author:      "A. Prameswari",
		Cover:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71",
		Genre:       "Data",
		Pages:       240,
		Rating:      4.3,
		Description: "Statistika praktis untuk pembaca non-teknis, dikemas sebagai percakapan.",
		Chapters: datatypes.NewJSONSlice([]models.BookChapter{
			{
				Title: "Rata-rata itu menipu",
				Lines: []models.FeedLine{
					{Role: "q", Text: "Kenapa rata-rata sering menyesatkan?"},
					{Role: "a", Text: "Satu outlier besar bisa menggeser rata-rata jauh dari kondisi mayoritas."},
				},
			},
		}),
	},
	{
		ID:          3,
		Title:       "Internet dari Nol",
		Author:      "B. Hardiansyah",
		Cover:       "https://images.unsplash.com/photo-1544197150-b99a580bb7a8",
		Genre:       "Jaringan",
		Pages:       156,
		Rating:      4.8,
		Description: "Dari kabel laut sampai DNS, dijelaskan seperti ngobrol di warung kopi.",
		Chapters: datatypes.NewJSONSlice([]models.BookChapter{
			{
				Title: "Paket data itu apa?",
				Lines: []models.FeedLine{
					{Role: "q", Text: "Data di internet jalannya gimana?"},
					{Role: "a", Text: "Dipotong jadi paket kecil yang masing-masing mencari jalan sendiri."},
				},
			},
		}),
	},
}

func Books() []models.Book {
	out := make([]models.Book, len(books))
	copy(out, books)
	return out
}
