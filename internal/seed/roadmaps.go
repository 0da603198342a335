package seed

import (
	"gorm.io/datatypes"

	"github.com/prasetyadi-dev/portal_konten_be/internal/models"
)

var roadmaps = []models.Roadmap{
	{
		Slug:     "backend-golang",
		Title:    "Backend Engineer dengan Go",
		Summary:  "Dari sintaks dasar sampai deploy service produksi.",
		Duration: "12 minggu",
		Level:    models.LevelPemula,
		Tags:     datatypes.NewJSONSlice([]string{"go", "backend", "api"}),
		Image:    "https://images.unsplash.com/photo-1629654297299-c8506221ca97",
		Steps: datatypes.NewJSONSlice([]models.RoadmapStep{
			{Title: "Dasar Go", Description: "Tipe data, struct, error handling, goroutine.", Focus: "Bahasa", Videos: []string{"https://youtu.be/un6ZyFkqFKo"}},
			{Title: "HTTP API", Description: "Routing, middleware, validasi request.", Focus: "Web", Videos: nil},
			{Title: "Database", Description: "Postgres, migrasi, ORM vs SQL mentah.", Focus: "Persistensi", Videos: nil},
		}),
	},
	{
		Slug:     "data-analyst",
		Title:    "Data Analyst dari Nol",
		Summary:  "Spreadsheet, SQL, lalu visualisasi yang jujur.",
		Duration: "8 minggu",
		Level:    models.LevelPemula,
		Tags:     datatypes.NewJSONSlice([]string{"sql", "data", "visualisasi"}),
		Image:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71",
		Steps: datatypes.NewJSONSlice([]models.RoadmapStep{
			{Title: "Spreadsheet lanjut", Description: "Pivot, lookup, pembersihan data.", Focus: "Dasar", Videos: nil},
			{Title: "SQL", Description: "SELECT, JOIN, agregasi, window function.", Focus: "Query", Videos: nil},
		}),
	},
	{
		Slug:     "mlops-praktis",
		Title:    "MLOps Praktis",
		Summary:  "Membawa model dari notebook ke produksi.",
		Duration: "10 minggu",
		Level:    models.LevelLanjutan,
		Tags:     datatypes.NewJSONSlice([]string{"ml", "ops", "docker"}),
		Image:    "https://images.unsplash.com/photo-1620712943543-bcc4688e7485",
		Steps: datatypes.NewJSONSlice([]models.RoadmapStep{
			{Title: "Packaging model", Description: "Serialisasi, versioning, container.", Focus: "Build", Videos: nil},
			{Title: "Serving", Description: "Batch vs online, autoscaling, monitoring drift.", Focus: "Serve", Videos: nil},
		}),
	},
}

func Roadmaps() []models.Roadmap {
	out := make([]models.Roadmap, len(roadmaps))
	copy(out, roadmaps)
	return out
}
