package catalog

import (
	"gamerank/backend/internal/models"

	"gorm.io/gorm"
)

// UserStats summarizes a user's rating activity for their profile.
type UserStats struct {
	NumRatings int64   `json:"num_ratings"`
	AvgScore   float64 `json:"avg_score"`
}

// StatsForUser computes how many games a user has rated and the mean of
// the scores they gave (0 when they have rated nothing).
func StatsForUser(db *gorm.DB, userID uint) (UserStats, error) {
	var stats UserStats
	err := db.Model(&models.Rating{}).
		Where("user_id = ?", userID).
		Select("COUNT(id) AS num_ratings, COALESCE(AVG(score), 0) AS avg_score").
		Scan(&stats).Error
	return stats, err
}

// SiteMetrics holds the site-wide totals shown on every page, plus the
// viewer's own contribution counts when signed in.
type SiteMetrics struct {
	TotalGames    int64 `json:"total_games"`
	TotalComments int64 `json:"total_comments"`
	UserVotes     int64 `json:"user_votes"`
	UserComments  int64 `json:"user_comments"`
}

// Metrics computes the site metrics. viewerID may be zero for anonymous
// visitors, in which case the per-user counts stay zero.
func Metrics(db *gorm.DB, viewerID uint) (SiteMetrics, error) {
	var metrics SiteMetrics
	if err := db.Model(&models.Game{}).Count(&metrics.TotalGames).Error; err != nil {
		return metrics, err
	}
	if err := db.Model(&models.Comment{}).Count(&metrics.TotalComments).Error; err != nil {
		return metrics, err
	}

	if viewerID != 0 {
		if err := db.Model(&models.Rating{}).Where("user_id = ?", viewerID).Count(&metrics.UserVotes).Error; err != nil {
			return metrics, err
		}
		if err := db.Model(&models.Comment{}).Where("user_id = ?", viewerID).Count(&metrics.UserComments).Error; err != nil {
			return metrics, err
		}
	}
	return metrics, nil
}
