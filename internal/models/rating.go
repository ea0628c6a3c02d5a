package models

import "time"

// Rating is a user's score for a game, an integer between 0 and 5.
// The (UserID, GameID) unique index backs the upsert: a user re-rating a
// game overwrites their previous score instead of adding a row.
type Rating struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index;uniqueIndex:idx_rating_user_game"`
	GameID    uint `gorm:"not null;index;uniqueIndex:idx_rating_user_game"`
	Score     int  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}
