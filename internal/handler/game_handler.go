package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gamerank/backend/internal/catalog"
	"gamerank/backend/internal/database"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type GameResponse struct {
	SourceID    string  `json:"source_id"`
	Title       string  `json:"title"`
	Thumbnail   string  `json:"thumbnail"`
	Genre       string  `json:"genre"`
	Platform    string  `json:"platform"`
	Developer   string  `json:"developer"`
	Publisher   string  `json:"publisher"`
	ReleaseDate string  `json:"release_date"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	AvgRating   float64 `json:"avg_rating"`
	NumVotes    int64   `json:"num_votes"`
	IsFollowed  bool    `json:"is_followed"`
}

func newGameResponse(item catalog.GameWithStats) GameResponse {
	return GameResponse{
		SourceID:    item.SourceID,
		Title:       item.Title,
		Thumbnail:   item.Thumbnail,
		Genre:       item.Genre,
		Platform:    item.Platform,
		Developer:   item.Developer,
		Publisher:   item.Publisher,
		ReleaseDate: item.ReleaseDate,
		Description: item.Description,
		URL:         item.URL,
		AvgRating:   item.AvgRating,
		NumVotes:    item.NumVotes,
		IsFollowed:  item.Followed,
	}
}

// GameDetailResponse is the signed-in detail view: the game, the viewer's
// own score and follow state, and the comment thread.
type GameDetailResponse struct {
	GameResponse
	UserScore *int              `json:"user_score"`
	Comments  []CommentResponse `json:"comments"`
}

// GameDataResponse is the machine-readable single-game projection.
type GameDataResponse struct {
	SourceID      string  `json:"source_id"`
	Title         string  `json:"title"`
	Thumbnail     string  `json:"thumbnail"`
	Genre         string  `json:"genre"`
	Platform      string  `json:"platform"`
	Developer     string  `json:"developer"`
	Publisher     string  `json:"publisher"`
	ReleaseDate   string  `json:"release_date"`
	Description   string  `json:"description"`
	URL           string  `json:"url"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
	CommentCount  int64   `json:"comment_count"`
}

type RatingInput struct {
	Score *int `json:"score" binding:"required"`
}

type RatingResponse struct {
	SourceID  string    `json:"source_id"`
	Score     int       `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FollowInput struct {
	Following *bool `json:"following" binding:"required"`
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// region --- Handlers ---

// GetGames godoc
// @Summary      List the game catalog
// @Description  Returns one page of the catalog ordered by average rating, optionally filtered by a search query.
// @Tags         games
// @Produce      json
// @Param        q    query  string  false  "Search query matched against title, description, genre and platform"
// @Param        page query  int     false  "Page number (out-of-range values clamp)" default(1)
// @Success      200  {object}  PaginatedGameResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	if Ingestor != nil {
		Ingestor.RefreshIfStale(c.Request.Context())
	}

	viewerID := uint(0)
	if id, exists := c.Get("userID"); exists {
		viewerID = id.(uint)
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := catalog.ListGames(database.DB, c.Query("q"), page, viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(result.Items))
	for _, item := range result.Items {
		response = append(response, newGameResponse(item))
	}

	c.JSON(http.StatusOK, PaginatedGameResponse{
		Data: response,
		Meta: PaginationMeta{
			TotalItems:  result.TotalItems,
			TotalPages:  result.TotalPages,
			CurrentPage: result.Page,
			PageSize:    catalog.PageSize,
		},
	})
}

// GetGameDetail godoc
// @Summary      Get a single game
// @Description  Retrieves a game with its aggregates, the viewer's score and follow state, and its comments.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        sourceID path string true "Game source ID"
// @Success      200 {object} GameDetailResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{sourceID} [get]
func GetGameDetail(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	sourceID := c.Param("sourceID")

	game, err := catalog.GetGame(database.DB, sourceID)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	stats, err := catalog.Stats(database.DB, game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute game stats"})
		return
	}

	userScore, err := catalog.UserScore(database.DB, userID, game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user rating"})
		return
	}

	following, err := catalog.IsFollowing(database.DB, userID, game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load follow state"})
		return
	}

	comments, err := catalog.ListComments(database.DB, sourceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}

	detail := GameDetailResponse{
		GameResponse: newGameResponse(catalog.GameWithStats{
			Game:      *game,
			AvgRating: stats.AvgRating,
			NumVotes:  stats.NumVotes,
			Followed:  following,
		}),
		UserScore: userScore,
		Comments:  newCommentResponses(comments),
	}

	c.JSON(http.StatusOK, detail)
}

// GetGameData godoc
// @Summary      Get a game as structured data
// @Description  Machine-readable projection of one game including aggregate stats.
// @Tags         games
// @Produce      json
// @Param        sourceID path string true "Game source ID"
// @Success      200 {object} GameDataResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{sourceID}/data [get]
func GetGameData(c *gin.Context) {
	sourceID := c.Param("sourceID")

	game, err := catalog.GetGame(database.DB, sourceID)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	stats, err := catalog.Stats(database.DB, game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute game stats"})
		return
	}

	c.JSON(http.StatusOK, GameDataResponse{
		SourceID:      game.SourceID,
		Title:         game.Title,
		Thumbnail:     game.Thumbnail,
		Genre:         game.Genre,
		Platform:      game.Platform,
		Developer:     game.Developer,
		Publisher:     game.Publisher,
		ReleaseDate:   game.ReleaseDate,
		Description:   game.Description,
		URL:           game.URL,
		AverageRating: stats.AvgRating,
		RatingCount:   stats.NumVotes,
		CommentCount:  stats.CommentCount,
	})
}

// SubmitRating godoc
// @Summary      Rate a game
// @Description  Creates or overwrites the caller's score for a game. Scores must be integers between 0 and 5.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sourceID path string      true "Game source ID"
// @Param        input    body RatingInput true "Score"
// @Success      200 {object} RatingResponse
// @Failure      400 {object} ErrorResponse "Invalid score"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{sourceID}/rating [post]
func SubmitRating(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	sourceID := c.Param("sourceID")

	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be an integer between 0 and 5"})
		return
	}

	rating, err := catalog.Rate(database.DB, userID, sourceID, *input.Score)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, RatingResponse{
		SourceID:  sourceID,
		Score:     rating.Score,
		UpdatedAt: rating.UpdatedAt,
	})
}

// SetFollow godoc
// @Summary      Follow or unfollow a game
// @Description  Forces the caller's follow state for a game. Repeating the same state is a no-op.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sourceID path string      true "Game source ID"
// @Param        input    body FollowInput true "Desired follow state"
// @Success      200 {object} map[string]bool "{"following": true}"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{sourceID}/follow [put]
func SetFollow(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	sourceID := c.Param("sourceID")

	var input FollowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	following, err := catalog.SetFollow(database.DB, userID, sourceID, *input.Following)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}

// endregion

// respondCatalogError maps catalog errors to HTTP responses.
func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, catalog.ErrInvalidScore):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be an integer between 0 and 5"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
