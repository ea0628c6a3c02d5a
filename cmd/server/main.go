package main

import (
	"net/http"
	"time"

	"gamerank/backend/internal/auth"
	"gamerank/backend/internal/config"
	"gamerank/backend/internal/database"
	"gamerank/backend/internal/handler"
	"gamerank/backend/internal/ingest"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	// Swagger imports
	_ "gamerank/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           GameRank API
// @version         1.0
// @description     This is the API for the GameRank game catalog and community service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Ingestion service writing through the shared database handle
	handler.Ingestor = ingest.NewService(
		database.DB,
		ingest.DefaultFeeds(config.AppConfig),
		time.Duration(config.AppConfig.FeedTimeoutSeconds)*time.Second,
		time.Duration(config.AppConfig.CatalogRefreshMinutes)*time.Minute,
	)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
			userRoutes.PUT("/me/preferences", handler.UpdatePreferences)
			userRoutes.GET("/me/games", handler.GetUserGames)
		}

		// Game routes
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", auth.OptionalAuthMiddleware(), handler.GetGames)
			gameRoutes.GET("/:sourceID/data", handler.GetGameData)
			gameRoutes.GET("/:sourceID/comments", handler.GetComments)

			protected := gameRoutes.Group("")
			protected.Use(auth.AuthMiddleware())
			{
				protected.GET("/:sourceID", handler.GetGameDetail)
				protected.POST("/:sourceID/comments", handler.CreateComment)
				protected.POST("/:sourceID/rating", handler.SubmitRating)
				protected.PUT("/:sourceID/follow", handler.SetFollow)
			}
		}

		// Comment routes (protected)
		commentRoutes := apiV1.Group("/comments")
		commentRoutes.Use(auth.AuthMiddleware())
		{
			commentRoutes.POST("/:id/reactions", handler.ReactToComment)
		}

		// Site metrics
		apiV1.GET("/metrics/site", auth.OptionalAuthMiddleware(), handler.GetSiteMetrics)

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			adminRoutes.POST("/ingestion/run", handler.RunIngestion)
		}
	}

	addr := ":" + config.AppConfig.Port
	log.Infof("Server is running on %s", addr)
	log.Info("Swagger UI is available at http://localhost:" + config.AppConfig.Port + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
