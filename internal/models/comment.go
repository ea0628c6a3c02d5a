package models

import "time"

// Comment is a user's comment on a game. Comments are append-only: there
// is no edit or delete path.
type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	GameID    uint   `gorm:"not null;index"`
	Text      string `gorm:"not null"`
	CreatedAt time.Time

	User      User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Game      Game              `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Reactions []CommentReaction `gorm:"foreignKey:CommentID"`
}
