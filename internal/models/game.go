package models

import "gorm.io/gorm"

// Game represents a catalog entry aggregated from an external feed.
// SourceID is synthesized as "<feed prefix><native id>" (e.g. "LIS1-345")
// so identical native IDs from different feeds never collide.
type Game struct {
	gorm.Model
	SourceID    string `gorm:"size:100;uniqueIndex;not null"`
	Title       string `gorm:"size:255;not null"`
	Thumbnail   string `gorm:"size:512"`
	Genre       string `gorm:"size:100"`
	Platform    string `gorm:"size:100"`
	Developer   string `gorm:"size:255"`
	Publisher   string `gorm:"size:255"`
	ReleaseDate string `gorm:"size:50"` // free text as provided by the feed
	Description string
	URL         string `gorm:"size:512"`
}
