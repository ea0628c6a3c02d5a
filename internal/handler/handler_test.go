package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"gamerank/backend/internal/auth"
	"gamerank/backend/internal/config"
	"gamerank/backend/internal/database"
	"gamerank/backend/internal/models"
	"gamerank/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
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

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	database.DB = newTestDB(t)
	Ingestor = nil

	router := gin.New()
	api := router.Group("/api/v1")

	api.POST("/auth/register", RegisterUser)
	api.POST("/auth/login", LoginUser)

	api.GET("/games", auth.OptionalAuthMiddleware(), GetGames)
	api.GET("/games/:sourceID/data", GetGameData)
	api.GET("/games/:sourceID/comments", GetComments)

	protected := api.Group("")
	protected.Use(auth.AuthMiddleware())
	{
		protected.GET("/games/:sourceID", GetGameDetail)
		protected.POST("/games/:sourceID/comments", CreateComment)
		protected.POST("/games/:sourceID/rating", SubmitRating)
		protected.PUT("/games/:sourceID/follow", SetFollow)
		protected.POST("/comments/:id/reactions", ReactToComment)
		protected.GET("/users/me", GetMe)
		protected.GET("/users/me/games", GetUserGames)
	}

	return router
}

func seedUserWithToken(t *testing.T) (models.User, string) {
	t.Helper()
	user := models.User{
		Nickname:     "alex",
		Email:        "alex@example.com",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := jwt.GenerateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func seedGame(t *testing.T, sourceID, title string) models.Game {
	t.Helper()
	game := models.Game{SourceID: sourceID, Title: title, Genre: "Strategy", Platform: "PC"}
	require.NoError(t, database.DB.Create(&game).Error)
	return game
}

func doJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEngagementRequiresAuthentication(t *testing.T) {
	router := setupRouter(t)
	seedGame(t, "LIS1-1", "Hearthstone")

	assert.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodPost, "/api/v1/games/LIS1-1/rating", "", `{"score": 3}`).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodPost, "/api/v1/games/LIS1-1/comments", "", `{"text": "hi"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodPut, "/api/v1/games/LIS1-1/follow", "", `{"following": true}`).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodPost, "/api/v1/comments/1/reactions", "", `{"is_like": true}`).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodGet, "/api/v1/games/LIS1-1", "", "").Code)
}

func TestSubmitRating(t *testing.T) {
	router := setupRouter(t)
	_, token := seedUserWithToken(t)
	seedGame(t, "LIS1-1", "Hearthstone")

	w := doJSON(router, http.MethodPost, "/api/v1/games/LIS1-1/rating", token, `{"score": 4}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response RatingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 4, response.Score)
	assert.Equal(t, "LIS1-1", response.SourceID)

	// Out-of-range and non-integer scores are rejected.
	assert.Equal(t, http.StatusBadRequest, doJSON(router, http.MethodPost, "/api/v1/games/LIS1-1/rating", token, `{"score": 6}`).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(router, http.MethodPost, "/api/v1/games/LIS1-1/rating", token, `{"score": "four"}`).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(router, http.MethodPost, "/api/v1/games/LIS1-1/rating", token, `{}`).Code)

	// Unknown game is a 404.
	assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodPost, "/api/v1/games/LIS9-404/rating", token, `{"score": 3}`).Code)

	var count int64
	require.NoError(t, database.DB.Model(&models.Rating{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestListGamesShowsAggregates(t *testing.T) {
	router := setupRouter(t)
	_, token := seedUserWithToken(t)
	seedGame(t, "LIS1-1", "Hearthstone")

	require.Equal(t, http.StatusOK, doJSON(router, http.MethodPost, "/api/v1/games/LIS1-1/rating", token, `{"score": 4}`).Code)

	w := doJSON(router, http.MethodGet, "/api/v1/games", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response PaginatedGameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	assert.Equal(t, "Hearthstone", response.Data[0].Title)
	assert.Equal(t, 4.0, response.Data[0].AvgRating)
	assert.EqualValues(t, 1, response.Data[0].NumVotes)
	assert.Equal(t, 1, response.Meta.CurrentPage)
}

func TestFollowToggleAndAnnotation(t *testing.T) {
	router := setupRouter(t)
	_, token := seedUserWithToken(t)
	seedGame(t, "LIS1-1", "Hearthstone")

	w := doJSON(router, http.MethodPut, "/api/v1/games/LIS1-1/follow", token, `{"following": true}`)
	require.Equal(t, http.StatusOK, w.Code)

	listed := doJSON(router, http.MethodGet, "/api/v1/games", token, "")
	require.Equal(t, http.StatusOK, listed.Code)
	var response PaginatedGameResponse
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	assert.True(t, response.Data[0].IsFollowed)

	w = doJSON(router, http.MethodPut, "/api/v1/games/LIS1-1/follow", token, `{"following": false}`)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, database.DB.Model(&models.FollowedGame{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCommentFlow(t *testing.T) {
	router := setupRouter(t)
	_, token := seedUserWithToken(t)
	seedGame(t, "LIS1-1", "Hearthstone")

	// Blank text means nothing to submit.
	assert.Equal(t, http.StatusNoContent, doJSON(router, http.MethodPost, "/api/v1/games/LIS1-1/comments", token, `{"text": "   "}`).Code)

	w := doJSON(router, http.MethodPost, "/api/v1/games/LIS1-1/comments", token, `{"text": "great game"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	listed := doJSON(router, http.MethodGet, "/api/v1/games/LIS1-1/comments", "", "")
	require.Equal(t, http.StatusOK, listed.Code)

	var comments []CommentResponse
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "great game", comments[0].Text)
	assert.Equal(t, "alex", comments[0].Author)
}

func TestGetGameData(t *testing.T) {
	router := setupRouter(t)
	_, token := seedUserWithToken(t)
	seedGame(t, "LIS1-1", "Hearthstone")

	require.Equal(t, http.StatusOK, doJSON(router, http.MethodPost, "/api/v1/games/LIS1-1/rating", token, `{"score": 5}`).Code)

	w := doJSON(router, http.MethodGet, "/api/v1/games/LIS1-1/data", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var data GameDataResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, "LIS1-1", data.SourceID)
	assert.Equal(t, 5.0, data.AverageRating)
	assert.EqualValues(t, 1, data.RatingCount)

	assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodGet, "/api/v1/games/LIS9-404/data", "", "").Code)
}

func TestGetUserGames(t *testing.T) {
	router := setupRouter(t)
	_, token := seedUserWithToken(t)
	seedGame(t, "LIS1-1", "Voted")
	seedGame(t, "LIS1-2", "Followed")

	require.Equal(t, http.StatusOK, doJSON(router, http.MethodPost, "/api/v1/games/LIS1-1/rating", token, `{"score": 3}`).Code)
	require.Equal(t, http.StatusOK, doJSON(router, http.MethodPut, "/api/v1/games/LIS1-2/follow", token, `{"following": true}`).Code)

	w := doJSON(router, http.MethodGet, "/api/v1/users/me/games?which=voted", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var voted []GameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &voted))
	require.Len(t, voted, 1)
	assert.Equal(t, "Voted", voted[0].Title)

	w = doJSON(router, http.MethodGet, "/api/v1/users/me/games?which=followed", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var followed []GameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &followed))
	require.Len(t, followed, 1)
	assert.Equal(t, "Followed", followed[0].Title)

	assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodGet, "/api/v1/users/me/games?which=bogus", token, "").Code)
}

func TestRegisterAndLogin(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", `{"nickname": "alex", "email": "alex@example.com", "password": "password123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate nickname is a conflict.
	assert.Equal(t, http.StatusConflict, doJSON(router, http.MethodPost, "/api/v1/auth/register", "", `{"nickname": "alex", "email": "other@example.com", "password": "password123"}`).Code)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", "", `{"login": "alex@example.com", "password": "password123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])

	assert.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodPost, "/api/v1/auth/login", "", `{"login": "alex@example.com", "password": "wrongpass"}`).Code)
}
