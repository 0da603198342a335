package models

import (
	"time"

	"gorm.io/datatypes"
)

type FeedCategory string

const (
	CategoryBerita   FeedCategory = "Berita"
	CategoryTutorial FeedCategory = "Tutorial"
	CategoryRiset    FeedCategory = "Riset"
)

func ValidFeedCategory(s string) bool {
	switch FeedCategory(s) {
	case CategoryBerita, CategoryTutorial, CategoryRiset:
		return true
	}
	return false
}

// FeedLine satu gelembung chat di dalam artikel. Role "q" = pertanyaan,
// "a" = jawaban.
type FeedLine struct {
	Role  string `json:"role"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

type FeedSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Feed artikel bergaya chat. ID integer berurutan, dipakai juga oleh
// pipeline fetch-news untuk melanjutkan penomoran.
type Feed struct {
	ID         uint                            `gorm:"primaryKey" json:"id"`
	Title      string                          `gorm:"not null" json:"title"`
	Category   FeedCategory                    `gorm:"type:varchar(20);not null;index" json:"category"`
	Popularity float64                         `json:"popularity"`
	Image      string                          `json:"image"`
	Lines      datatypes.JSONSlice[FeedLine]   `json:"lines"`
	Takeaway   string                          `json:"takeaway"`
	Source     *datatypes.JSONType[FeedSource] `json:"source,omitempty"`
	StoryID    *uint                           `gorm:"index" json:"storyId,omitempty"`
	CreatedAt  time.Time                       `json:"createdAt"`
}
