// Package catalog implements the game catalog core: ranked listings,
// per-game aggregates, and the engagement operations (ratings, comments,
// reactions, follows). Every function takes an explicit *gorm.DB handle
// so handlers and tests can inject their own database.
package catalog

import (
	"errors"
	"strings"

	"gamerank/backend/internal/models"

	"gorm.io/gorm"
)

// PageSize is the fixed number of games per listing page.
const PageSize = 21

var (
	// ErrNotFound means the referenced game or comment does not exist.
	ErrNotFound = errors.New("catalog: not found")
	// ErrInvalidScore means a rating score outside the 0-5 range.
	ErrInvalidScore = errors.New("catalog: score must be between 0 and 5")
)

// GameWithStats is a game annotated with its aggregate rank: the mean of
// its rating scores (0 when unrated, never null) and the vote count.
type GameWithStats struct {
	models.Game
	AvgRating float64 `json:"avg_rating"`
	NumVotes  int64   `json:"num_votes"`
	Followed  bool    `json:"is_followed" gorm:"-"`
}

// GamePage is one page of a ranked listing.
type GamePage struct {
	Items      []GameWithStats
	Page       int
	TotalPages int
	TotalItems int64
}

// GameStats holds the aggregates for a single game.
type GameStats struct {
	AvgRating    float64 `json:"average_rating"`
	NumVotes     int64   `json:"rating_count"`
	CommentCount int64   `json:"comment_count"`
}

// searchFilter applies the free-text catalog filter: a case-insensitive
// substring match OR'd across title, description, genre and platform.
func searchFilter(db *gorm.DB, query string) *gorm.DB {
	if query == "" {
		return db
	}
	pattern := "%" + strings.ToLower(query) + "%"
	return db.Where(
		"LOWER(games.title) LIKE ? OR LOWER(games.description) LIKE ? OR LOWER(games.genre) LIKE ? OR LOWER(games.platform) LIKE ?",
		pattern, pattern, pattern, pattern,
	)
}

// withStats selects games together with their aggregate rating columns,
// ordered by average rating descending. Source ID breaks ties so that the
// listing order is deterministic.
func withStats(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Game{}).
		Select("games.*, COALESCE(AVG(ratings.score), 0) AS avg_rating, COUNT(ratings.id) AS num_votes").
		Joins("LEFT JOIN ratings ON ratings.game_id = games.id").
		Group("games.id").
		Order("avg_rating DESC, games.source_id ASC")
}

// ListGames returns one page of the ranked catalog, optionally filtered by
// a search query. Out-of-range page numbers clamp to the nearest valid
// page. When viewerID is non-zero, games the viewer follows are flagged.
func ListGames(db *gorm.DB, query string, page int, viewerID uint) (*GamePage, error) {
	var total int64
	if err := searchFilter(db.Model(&models.Game{}), query).Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	var items []GameWithStats
	err := searchFilter(withStats(db), query).
		Offset((page - 1) * PageSize).
		Limit(PageSize).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	if viewerID != 0 {
		if err := annotateFollowed(db, viewerID, items); err != nil {
			return nil, err
		}
	}

	return &GamePage{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
	}, nil
}

// ListUserGames returns the games a user has voted on or follows, with the
// same ranking and annotations as the main listing. The which argument is
// "voted" or "followed".
func ListUserGames(db *gorm.DB, userID uint, which string) ([]GameWithStats, error) {
	var sub *gorm.DB
	switch which {
	case "voted":
		sub = db.Model(&models.Rating{}).Select("game_id").Where("user_id = ?", userID)
	case "followed":
		sub = db.Model(&models.FollowedGame{}).Select("game_id").Where("user_id = ?", userID)
	default:
		return nil, ErrNotFound
	}

	var items []GameWithStats
	if err := withStats(db).Where("games.id IN (?)", sub).Scan(&items).Error; err != nil {
		return nil, err
	}

	if err := annotateFollowed(db, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func annotateFollowed(db *gorm.DB, viewerID uint, items []GameWithStats) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	var follows []models.FollowedGame
	if err := db.Where("user_id = ? AND game_id IN ?", viewerID, ids).Find(&follows).Error; err != nil {
		return err
	}

	followed := make(map[uint]bool, len(follows))
	for _, f := range follows {
		followed[f.GameID] = true
	}
	for i := range items {
		items[i].Followed = followed[items[i].ID]
	}
	return nil
}

// GetGame finds a game by its external source ID.
func GetGame(db *gorm.DB, sourceID string) (*models.Game, error) {
	var game models.Game
	if err := db.Where("source_id = ?", sourceID).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &game, nil
}

// Stats computes the aggregates for one game.
func Stats(db *gorm.DB, gameID uint) (GameStats, error) {
	var stats GameStats
	err := db.Model(&models.Rating{}).
		Where("game_id = ?", gameID).
		Select("COALESCE(AVG(score), 0) AS avg_rating, COUNT(id) AS num_votes").
		Scan(&stats).Error
	if err != nil {
		return stats, err
	}

	err = db.Model(&models.Comment{}).
		Where("game_id = ?", gameID).
		Count(&stats.CommentCount).Error
	return stats, err
}
