package models

import "gorm.io/datatypes"

type RoadmapLevel string

const (
	LevelPemula   RoadmapLevel = "Pemula"
	LevelMenengah RoadmapLevel = "Menengah"
	LevelLanjutan RoadmapLevel = "Lanjutan"
)

func ValidRoadmapLevel(s string) bool {
	switch RoadmapLevel(s) {
	case LevelPemula, LevelMenengah, LevelLanjutan:
		return true
	}
	return false
}

type RoadmapStep struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Focus       string   `json:"focus"`
	Videos      []string `json:"videos"`
}

// Roadmap jalur belajar. Slug jadi primary key, diturunkan dari judul
// kalau tidak dikirim client.
type Roadmap struct {
	Slug     string                           `gorm:"primaryKey;type:varchar(160)" json:"slug"`
	Title    string                           `gorm:"not null" json:"title"`
	Summary  string                           `json:"summary"`
	Duration string                           `json:"duration"`
	Level    RoadmapLevel                     `gorm:"type:varchar(20)" json:"level"`
	Tags     datatypes.JSONSlice[string]      `json:"tags"`
	Image    string                           `json:"image"`
	Steps    datatypes.JSONSlice[RoadmapStep] `json:"steps"`
}
