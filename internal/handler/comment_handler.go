package handler

import (
	"net/http"
	"strconv"
	"time"

	"gamerank/backend/internal/catalog"
	"gamerank/backend/internal/database"

	"github.com/gin-gonic/gin"
)

type CommentInput struct {
	Text string `json:"text"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int64     `json:"likes"`
	Dislikes  int64     `json:"dislikes"`
}

func newCommentResponses(comments []catalog.CommentWithStats) []CommentResponse {
	response := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		response = append(response, CommentResponse{
			ID:        comment.ID,
			Author:    comment.User.Nickname,
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt,
			Likes:     comment.Likes,
			Dislikes:  comment.Dislikes,
		})
	}
	return response
}

type ReactionInput struct {
	IsLike *bool `json:"is_like" binding:"required"`
}

type ReactionResponse struct {
	CommentID uint `json:"comment_id"`
	IsLike    bool `json:"is_like"`
}

// GetComments godoc
// @Summary      List a game's comments
// @Description  Returns the comment thread for a game, newest first, with reaction tallies.
// @Tags         comments
// @Produce      json
// @Param        sourceID path string true "Game source ID"
// @Success      200 {array}  CommentResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{sourceID}/comments [get]
func GetComments(c *gin.Context) {
	comments, err := catalog.ListComments(database.DB, c.Param("sourceID"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCommentResponses(comments))
}

// CreateComment godoc
// @Summary      Comment on a game
// @Description  Appends a comment to a game. Text that is empty after trimming is treated as nothing to submit.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sourceID path string       true "Game source ID"
// @Param        input    body CommentInput true "Comment text"
// @Success      201 {object} CommentResponse
// @Success      204 "Nothing to submit"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{sourceID}/comments [post]
func CreateComment(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := catalog.AddComment(database.DB, userID, c.Param("sourceID"), input.Text)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	if comment == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusCreated, CommentResponse{
		ID:        comment.ID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	})
}

// ReactToComment godoc
// @Summary      React to a comment
// @Description  Creates or overwrites the caller's like/dislike on a comment.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int           true "Comment ID"
// @Param        input body ReactionInput true "Reaction"
// @Success      200 {object} ReactionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Comment not found"
// @Router       /comments/{id}/reactions [post]
func ReactToComment(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	var input ReactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reaction, err := catalog.ReactToComment(database.DB, userID, uint(commentID), *input.IsLike)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReactionResponse{
		CommentID: reaction.CommentID,
		IsLike:    reaction.IsLike,
	})
}
