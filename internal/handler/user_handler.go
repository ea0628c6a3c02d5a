package handler

import (
	"net/http"

	"gamerank/backend/internal/catalog"
	"gamerank/backend/internal/database"
	"gamerank/backend/internal/models"
	"gamerank/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Nickname string `json:"nickname" binding:"required" example:"testuser"`
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Login    string `json:"login" binding:"required" example:"testuser"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// PreferencesInput defines the editable profile preferences.
type PreferencesInput struct {
	Nickname string `json:"nickname"`
	Font     string `json:"font"`
	FontSize string `json:"font_size"`
}

// ProfileResponse is the authenticated user's own profile with their
// rating activity.
type ProfileResponse struct {
	ID         uint    `json:"id" example:"1"`
	Nickname   string  `json:"nickname" example:"testuser"`
	Email      string  `json:"email" example:"test@example.com"`
	Font       string  `json:"font"`
	FontSize   string  `json:"font_size"`
	NumRatings int64   `json:"num_ratings"`
	AvgScore   float64 `json:"avg_score"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("nickname = ? OR email = ?", input.Nickname, input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Nickname or email already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Nickname:     input.Nickname,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with nickname/email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("nickname = ? OR email = ?", input.Login, input.Login).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// endregion

// region --- Profile Handlers ---

// GetMe godoc
// @Summary      Get own profile
// @Description  Returns the authenticated user's profile with their rating stats.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ProfileResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /users/me [get]
func GetMe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	stats, err := catalog.StatsForUser(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute rating stats"})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		ID:         user.ID,
		Nickname:   user.Nickname,
		Email:      user.Email,
		Font:       user.Font,
		FontSize:   user.FontSize,
		NumRatings: stats.NumRatings,
		AvgScore:   stats.AvgScore,
	})
}

// UpdatePreferences godoc
// @Summary      Update profile preferences
// @Description  Updates the caller's nickname and display preferences. Empty fields are left unchanged.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PreferencesInput true "Preferences"
// @Success      200 {object} ProfileResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse "Nickname already taken"
// @Router       /users/me/preferences [put]
func UpdatePreferences(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input PreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if input.Nickname != "" {
		user.Nickname = input.Nickname
	}
	if input.Font != "" {
		user.Font = input.Font
	}
	if input.FontSize != "" {
		user.FontSize = input.FontSize
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Nickname already taken"})
		return
	}

	GetMe(c)
}

// GetUserGames godoc
// @Summary      List the caller's games
// @Description  Returns the games the caller has voted on or follows, ranked like the main listing.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        which query string true "Selection: voted or followed" Enums(voted, followed)
// @Success      200 {array}  GameResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Unknown selection"
// @Router       /users/me/games [get]
func GetUserGames(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	items, err := catalog.ListUserGames(database.DB, userID, c.Query("which"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	response := make([]GameResponse, 0, len(items))
	for _, item := range items {
		response = append(response, newGameResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// endregion
