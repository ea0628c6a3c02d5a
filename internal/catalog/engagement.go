package catalog

import (
	"errors"
	"strings"

	"gamerank/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Rate records a user's score for a game, overwriting any previous score
// by the same user. Scores outside [0,5] are rejected without touching
// the store. The upsert is a single ON CONFLICT statement so concurrent
// ratings for the same pair can never produce two rows.
func Rate(db *gorm.DB, userID uint, sourceID string, score int) (*models.Rating, error) {
	if score < 0 || score > 5 {
		return nil, ErrInvalidScore
	}

	game, err := GetGame(db, sourceID)
	if err != nil {
		return nil, err
	}

	rating := models.Rating{UserID: userID, GameID: game.ID, Score: score}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// AddComment appends a comment to a game. Text is trimmed first; an empty
// result means there is nothing to submit, so no record is created and no
// error is returned.
func AddComment(db *gorm.DB, userID uint, sourceID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	game, err := GetGame(db, sourceID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{UserID: userID, GameID: game.ID, Text: text}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// CommentWithStats is a comment annotated with its reaction tallies.
type CommentWithStats struct {
	models.Comment
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

// ListComments returns a game's comments, newest first.
func ListComments(db *gorm.DB, sourceID string) ([]CommentWithStats, error) {
	game, err := GetGame(db, sourceID)
	if err != nil {
		return nil, err
	}

	var comments []models.Comment
	err = db.Preload("User").Preload("Reactions").
		Where("game_id = ?", game.ID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	result := make([]CommentWithStats, 0, len(comments))
	for _, comment := range comments {
		entry := CommentWithStats{Comment: comment}
		for _, reaction := range comment.Reactions {
			if reaction.IsLike {
				entry.Likes++
			} else {
				entry.Dislikes++
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

// ReactToComment records a like or dislike on a comment, overwriting the
// user's previous reaction if there is one.
func ReactToComment(db *gorm.DB, userID, commentID uint, isLike bool) (*models.CommentReaction, error) {
	var comment models.Comment
	if err := db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reaction := models.CommentReaction{UserID: userID, CommentID: comment.ID, IsLike: isLike}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "comment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_like", "updated_at"}),
	}).Create(&reaction).Error
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

// SetFollow forces the follow state for (user, game) to desired and
// returns the resulting state. Both directions are idempotent: following
// an already-followed game and unfollowing a non-followed one are no-ops.
func SetFollow(db *gorm.DB, userID uint, sourceID string, desired bool) (bool, error) {
	game, err := GetGame(db, sourceID)
	if err != nil {
		return false, err
	}

	if desired {
		follow := models.FollowedGame{UserID: userID, GameID: game.ID}
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
		if err != nil {
			return false, err
		}
		return true, nil
	}

	err = db.Where("user_id = ? AND game_id = ?", userID, game.ID).
		Delete(&models.FollowedGame{}).Error
	if err != nil {
		return false, err
	}
	return false, nil
}

// UserScore returns the score the user gave a game, or nil if they have
// not rated it.
func UserScore(db *gorm.DB, userID, gameID uint) (*int, error) {
	var rating models.Rating
	err := db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating.Score, nil
}

// IsFollowing reports whether the user follows the game.
func IsFollowing(db *gorm.DB, userID, gameID uint) (bool, error) {
	var count int64
	err := db.Model(&models.FollowedGame{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	return count > 0, err
}
