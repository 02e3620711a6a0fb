package routes

import (
	"log"

	"github.com/Isak-k/Sanbitu-FC/internal/api/handlers"
	"github.com/Isak-k/Sanbitu-FC/internal/api/middleware"
	"github.com/Isak-k/Sanbitu-FC/internal/auth"
	"github.com/Isak-k/Sanbitu-FC/internal/config"
	"github.com/Isak-k/Sanbitu-FC/internal/repository"
	"github.com/Isak-k/Sanbitu-FC/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	lineupRepo := repository.NewLineupEntryRepository(db)
	eventRepo := repository.NewMatchEventRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	galleryRepo := repository.NewGalleryPhotoRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, validator)
	playerService := service.NewPlayerService(playerRepo, eventRepo, validator)
	matchService := service.NewMatchService(matchRepo, validator)
	lineupService := service.NewLineupService(lineupRepo, matchRepo, playerRepo, validator)
	eventService := service.NewMatchEventService(eventRepo, matchRepo, playerRepo, validator)
	announcementService := service.NewAnnouncementService(announcementRepo, validator)
	imageHostService := service.NewImageHostService(cfg)
	galleryService := service.NewGalleryService(galleryRepo, imageHostService, validator)

	// Initialize auth service and middleware
	authService, err := auth.NewAuthService(cfg.JWTSecret, userService)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	matchHandler := handlers.NewMatchHandler(matchService)
	lineupHandler := handlers.NewLineupHandler(lineupService)
	eventHandler := handlers.NewMatchEventHandler(eventService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/validate", authHandler.ValidateToken)

		// First-run setup: allowed only while no accounts exist
		authGroup.POST("/bootstrap", userHandler.BootstrapAdmin)

		// Password re-confirmation for admin account mutations
		authGroup.POST("/reauthenticate", authMiddleware.RequireAuth(), authHandler.Reauthenticate)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	admin := authMiddleware.RequireAdmin()

	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("/me", userHandler.GetMe)
			users.GET("", admin, userHandler.ListUsers)
			users.POST("", admin, userHandler.CreateUser)
			users.GET("/:id", admin, userHandler.GetUser)
			users.PUT("/:id", admin, userHandler.UpdateUser)
			users.DELETE("/:id", admin, userHandler.DeleteUser)
		}

		// Player routes
		players := v1.Group("/players")
		{
			players.GET("", playerHandler.ListPlayers)
			players.GET("/:id", playerHandler.GetPlayer)
			players.GET("/:id/events", playerHandler.GetPlayerEvents)
			players.POST("", admin, playerHandler.CreatePlayer)
			players.PUT("/:id", admin, playerHandler.UpdatePlayer)
			players.DELETE("/:id", admin, playerHandler.DeletePlayer)
		}

		// Match routes
		matches := v1.Group("/matches")
		{
			matches.GET("", matchHandler.ListMatches)
			matches.GET("/upcoming", matchHandler.ListUpcomingMatches)
			matches.GET("/results", matchHandler.ListResults)
			matches.GET("/:id", matchHandler.GetMatch)
			matches.GET("/:id/details", matchHandler.GetMatchDetails)
			matches.POST("", admin, matchHandler.CreateMatch)
			matches.PUT("/:id", admin, matchHandler.UpdateMatch)
			matches.PUT("/:id/result", admin, matchHandler.RecordResult)
			matches.DELETE("/:id", admin, matchHandler.DeleteMatch)

			// Lineup routes
			matches.GET("/:id/lineup", lineupHandler.GetLineup)
			matches.POST("/:id/lineup", admin, lineupHandler.AddEntry)
			matches.PUT("/:id/lineup/:entryId", admin, lineupHandler.UpdateEntry)
			matches.DELETE("/:id/lineup/:entryId", admin, lineupHandler.RemoveEntry)

			// Match event routes
			matches.GET("/:id/events", eventHandler.ListEvents)
			matches.POST("/:id/events", admin, eventHandler.CreateEvent)
			matches.PUT("/:id/events/:eventId", admin, eventHandler.UpdateEvent)
			matches.DELETE("/:id/events/:eventId", admin, eventHandler.DeleteEvent)
		}

		// Announcement routes
		announcements := v1.Group("/announcements")
		{
			announcements.GET("", announcementHandler.ListAnnouncements)
			announcements.GET("/:id", announcementHandler.GetAnnouncement)
			announcements.POST("", admin, announcementHandler.CreateAnnouncement)
			announcements.PUT("/:id", admin, announcementHandler.UpdateAnnouncement)
			announcements.DELETE("/:id", admin, announcementHandler.DeleteAnnouncement)
		}

		// Gallery routes
		gallery := v1.Group("/gallery")
		{
			gallery.GET("", galleryHandler.ListPhotos)
			gallery.GET("/:id", galleryHandler.GetPhoto)
			gallery.POST("", admin, galleryHandler.UploadPhoto)
			gallery.PUT("/:id", admin, galleryHandler.UpdatePhoto)
			gallery.DELETE("/:id", admin, galleryHandler.DeletePhoto)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
