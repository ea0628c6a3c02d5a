package models

import "time"

// FollowedGame marks a game as followed by a user. Presence of the row is
// the follow state; the (UserID, GameID) unique index keeps it to at most
// one row per pair.
type FollowedGame struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index;uniqueIndex:idx_follow_user_game"`
	GameID    uint `gorm:"not null;index;uniqueIndex:idx_follow_user_game"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}
