package catalog

import (
	"fmt"
	"path/filepath"
	"testing"

	"gamerank/backend/internal/database"
	"gamerank/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, nickname string) models.User {
	t.Helper()
	user := models.User{
		Nickname:     nickname,
		Email:        nickname + "@example.com",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedGame(t *testing.T, db *gorm.DB, sourceID, title string) models.Game {
	t.Helper()
	game := models.Game{
		SourceID: sourceID,
		Title:    title,
		Genre:    "Strategy",
		Platform: "PC",
	}
	require.NoError(t, db.Create(&game).Error)
	return game
}

func TestAverageRatingZeroWithoutVotes(t *testing.T) {
	db := newTestDB(t)
	seedGame(t, db, "LIS1-1", "Hearthstone")

	page, err := ListGames(db, "", 1, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 0.0, page.Items[0].AvgRating)
	assert.EqualValues(t, 0, page.Items[0].NumVotes)
}

func TestListGamesOrdersByAverageRating(t *testing.T) {
	db := newTestDB(t)
	alex := seedUser(t, db, "alex")
	blair := seedUser(t, db, "blair")

	low := seedGame(t, db, "LIS1-1", "Low")
	high := seedGame(t, db, "LIS1-2", "High")
	seedGame(t, db, "LIS1-3", "Unrated")

	require.NoError(t, db.Create(&models.Rating{UserID: alex.ID, GameID: low.ID, Score: 2}).Error)
	require.NoError(t, db.Create(&models.Rating{UserID: alex.ID, GameID: high.ID, Score: 5}).Error)
	require.NoError(t, db.Create(&models.Rating{UserID: blair.ID, GameID: high.ID, Score: 4}).Error)

	page, err := ListGames(db, "", 1, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	assert.Equal(t, "High", page.Items[0].Title)
	assert.Equal(t, 4.5, page.Items[0].AvgRating)
	assert.EqualValues(t, 2, page.Items[0].NumVotes)
	assert.Equal(t, "Low", page.Items[1].Title)
	assert.Equal(t, "Unrated", page.Items[2].Title)
}

func TestListGamesBreaksTiesBySourceID(t *testing.T) {
	db := newTestDB(t)
	seedGame(t, db, "LIS2-9", "Beta")
	seedGame(t, db, "LIS1-1", "Alpha")

	page, err := ListGames(db, "", 1, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "LIS1-1", page.Items[0].SourceID)
	assert.Equal(t, "LIS2-9", page.Items[1].SourceID)
}

func TestPaginationClampsOutOfRangePages(t *testing.T) {
	db := newTestDB(t)
	for i := 1; i <= 25; i++ {
		seedGame(t, db, fmt.Sprintf("LIS1-%02d", i), fmt.Sprintf("Game %02d", i))
	}

	page1, err := ListGames(db, "", 1, 0)
	require.NoError(t, err)
	assert.Len(t, page1.Items, 21)
	assert.Equal(t, 1, page1.Page)
	assert.Equal(t, 2, page1.TotalPages)
	assert.EqualValues(t, 25, page1.TotalItems)

	page2, err := ListGames(db, "", 2, 0)
	require.NoError(t, err)
	assert.Len(t, page2.Items, 4)

	// Beyond the last page clamps to the last page's content.
	page3, err := ListGames(db, "", 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, page3.Page)
	require.Len(t, page3.Items, 4)
	assert.Equal(t, page2.Items[0].SourceID, page3.Items[0].SourceID)

	// Below the first page clamps to the first.
	page0, err := ListGames(db, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page0.Page)
	assert.Len(t, page0.Items, 21)
}

func TestSearchFiltersAcrossFields(t *testing.T) {
	db := newTestDB(t)
	seedGame(t, db, "LIS1-1", "Hearthstone")
	game := models.Game{
		SourceID:    "LIS2-2",
		Title:       "Call of War",
		Genre:       "Strategy",
		Platform:    "Browser",
		Description: "World war simulation",
	}
	require.NoError(t, db.Create(&game).Error)

	byTitle, err := ListGames(db, "Hearth", 1, 0)
	require.NoError(t, err)
	require.Len(t, byTitle.Items, 1)
	assert.Equal(t, "Hearthstone", byTitle.Items[0].Title)

	byDescription, err := ListGames(db, "simulation", 1, 0)
	require.NoError(t, err)
	require.Len(t, byDescription.Items, 1)
	assert.Equal(t, "Call of War", byDescription.Items[0].Title)

	byPlatform, err := ListGames(db, "browser", 1, 0)
	require.NoError(t, err)
	assert.Len(t, byPlatform.Items, 1)

	// Strategy matches both games.
	byGenre, err := ListGames(db, "STRATEGY", 1, 0)
	require.NoError(t, err)
	assert.Len(t, byGenre.Items, 2)

	// No match is an empty result, not an error.
	none, err := ListGames(db, "does-not-exist", 1, 0)
	require.NoError(t, err)
	assert.Empty(t, none.Items)
}

func TestListGamesAnnotatesFollowedForViewer(t *testing.T) {
	db := newTestDB(t)
	alex := seedUser(t, db, "alex")
	followed := seedGame(t, db, "LIS1-1", "Followed")
	seedGame(t, db, "LIS1-2", "Other")

	_, err := SetFollow(db, alex.ID, followed.SourceID, true)
	require.NoError(t, err)

	page, err := ListGames(db, "", 1, alex.ID)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	for _, item := range page.Items {
		assert.Equal(t, item.SourceID == "LIS1-1", item.Followed)
	}

	// Anonymous viewers see no follow flags.
	anon, err := ListGames(db, "", 1, 0)
	require.NoError(t, err)
	for _, item := range anon.Items {
		assert.False(t, item.Followed)
	}
}

func TestListUserGames(t *testing.T) {
	db := newTestDB(t)
	alex := seedUser(t, db, "alex")
	voted := seedGame(t, db, "LIS1-1", "Voted")
	followed := seedGame(t, db, "LIS1-2", "Followed")
	seedGame(t, db, "LIS1-3", "Neither")

	_, err := Rate(db, alex.ID, voted.SourceID, 3)
	require.NoError(t, err)
	_, err = SetFollow(db, alex.ID, followed.SourceID, true)
	require.NoError(t, err)

	votedGames, err := ListUserGames(db, alex.ID, "voted")
	require.NoError(t, err)
	require.Len(t, votedGames, 1)
	assert.Equal(t, "Voted", votedGames[0].Title)

	followedGames, err := ListUserGames(db, alex.ID, "followed")
	require.NoError(t, err)
	require.Len(t, followedGames, 1)
	assert.Equal(t, "Followed", followedGames[0].Title)
	assert.True(t, followedGames[0].Followed)

	_, err = ListUserGames(db, alex.ID, "bogus")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetGame(t *testing.T) {
	db := newTestDB(t)
	seedGame(t, db, "LIS1-1", "Hearthstone")

	game, err := GetGame(db, "LIS1-1")
	require.NoError(t, err)
	assert.Equal(t, "Hearthstone", game.Title)

	_, err = GetGame(db, "LIS9-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	alex := seedUser(t, db, "alex")
	game := seedGame(t, db, "LIS1-1", "Hearthstone")

	stats, err := Stats(db, game.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.AvgRating)
	assert.EqualValues(t, 0, stats.NumVotes)
	assert.EqualValues(t, 0, stats.CommentCount)

	_, err = Rate(db, alex.ID, game.SourceID, 4)
	require.NoError(t, err)
	_, err = AddComment(db, alex.ID, game.SourceID, "good game")
	require.NoError(t, err)

	stats, err = Stats(db, game.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, stats.AvgRating)
	assert.EqualValues(t, 1, stats.NumVotes)
	assert.EqualValues(t, 1, stats.CommentCount)
}

// The full round trip: ingest-shaped game, a rating, and the listing view.
func TestRatedGameAppearsRankedInListing(t *testing.T) {
	db := newTestDB(t)
	alex := seedUser(t, db, "alex")
	seedGame(t, db, "LIS1-1", "Hearthstone")

	rating, err := Rate(db, alex.ID, "LIS1-1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Score)

	page, err := ListGames(db, "", 1, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Hearthstone", page.Items[0].Title)
	assert.Equal(t, 4.0, page.Items[0].AvgRating)
	assert.EqualValues(t, 1, page.Items[0].NumVotes)
}
