package models

import "time"

// CommentReaction is a like or dislike on a comment. One reaction per
// (user, comment): reacting again flips the stored value in place.
type CommentReaction struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index;uniqueIndex:idx_reaction_user_comment"`
	CommentID uint `gorm:"not null;index;uniqueIndex:idx_reaction_user_comment"`
	IsLike    bool `gorm:"not null"` // true = like, false = dislike
	CreatedAt time.Time
	UpdatedAt time.Time

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comment Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}
