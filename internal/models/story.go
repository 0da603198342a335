package models

// Story entitas teaser kecil, tampil sebagai gelembung "status" di portal.
// Feed/Book boleh menunjuk ke sini lewat StoryID (lookup saja, tanpa cascade).
type Story struct {
	ID      uint         `gorm:"primaryKey" json:"id"`
	Name    string       `gorm:"not null" json:"name"`
	Label   string       `json:"label"`
	Type    FeedCategory `gorm:"type:varchar(20)" json:"type"`
	Palette string       `json:"palette"`
	Image   string       `json:"image"`
	Viral   bool         `json:"viral"`
}
