package models

import "gorm.io/datatypes"

// BookChapter bab buku, isinya baris chat seperti Feed.Lines.
type BookChapter struct {
	Title string     `json:"title"`
	Lines []FeedLine `json:"lines"`
}

type Book struct {
	ID          uint                             `gorm:"primaryKey" json:"id"`
	Title       string                           `gorm:"not null" json:"title"`
	Author      string                           `json:"author"`
	Cover       string                           `json:"cover"`
	Genre       string                           `json:"genre"`
	Pages       int                              `json:"pages"`
	Rating      float64                          `json:"rating"`
	Description string                           `json:"description"`
	Chapters    datatypes.JSONSlice[BookChapter] `json:"chapters"`
	StoryID     *uint                            `gorm:"index" json:"storyId,omitempty"`
}
