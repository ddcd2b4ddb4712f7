package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alpinemaps/venue-map-server/src/config"
	"github.com/alpinemaps/venue-map-server/src/database"
	"github.com/alpinemaps/venue-map-server/src/handlers"
	"github.com/alpinemaps/venue-map-server/src/logging"
	"github.com/alpinemaps/venue-map-server/src/middleware"
	"github.com/alpinemaps/venue-map-server/src/models"
	"github.com/alpinemaps/venue-map-server/src/repositories/mongodb"
	"github.com/alpinemaps/venue-map-server/src/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	dbConnectAttempts = 5
	dbConnectDelay    = 5 * time.Second
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	handlers.SetEnvironment(cfg.Environment)
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().
		Int("port", cfg.Port).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Token signing-key misconfiguration is fatal at process start
	tokenService, err := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token service")
	}

	// Connect to the database; startup is the only place that retries
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDBName, dbConnectAttempts, dbConnectDelay)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	err = db.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	log.Info().Msg("database connected")

	// Wire repositories and services
	venueRepo := mongodb.NewVenueRepository(db.Collection(database.CollectionVenues))
	bannerRepo := mongodb.NewBannerRepository(db.Collection(database.CollectionBanners))
	adminRepo := mongodb.NewAdminRepository(db.Collection(database.CollectionAdmins))

	venueService := services.NewVenueService(venueRepo)
	bannerService := services.NewBannerService(bannerRepo)
	adminService := services.NewAdminService(adminRepo, venueRepo)

	// Create Gin router
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	setupRoutes(router, db, cfg, tokenService, adminService, venueService, bannerService)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown with timeout; close the store handle last
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	db.Close(ctx)

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(
	router *gin.Engine,
	db *database.Database,
	cfg *config.Config,
	tokenService *services.TokenService,
	adminService *services.AdminService,
	venueService *services.VenueService,
	bannerService *services.BannerService,
) {
	healthHandler := handlers.NewHealthHandler(db, cfg.Environment)
	venueHandler := handlers.NewVenueHandler(venueService)
	bannerHandler := handlers.NewBannerHandler(bannerService)
	adminHandler := handlers.NewAdminHandler(adminService, tokenService)

	// Health check endpoint
	router.GET("/health", healthHandler.HandleHealth)

	api := router.Group("/api")
	api.Use(middleware.APIRateLimitMiddleware())

	authGate := middleware.RequireAuth(tokenService, adminService)
	roleGate := middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin)

	// Venue routes. Reads are public; writes carry the same auth + role gate
	// as the /api/admin/venues routes.
	api.GET("/venues", venueHandler.HandleList)
	api.GET("/venues/stats", venueHandler.HandleStats)
	api.GET("/venues/:id", venueHandler.HandleGet)
	api.POST("/venues", authGate, roleGate, venueHandler.HandleCreate)
	api.PATCH("/venues/:id", authGate, roleGate, venueHandler.HandleUpdate)
	api.DELETE("/venues/:id", authGate, roleGate, venueHandler.HandleDelete)

	// Banner routes: public read, authenticated writes
	api.GET("/banners", bannerHandler.HandleList)
	api.POST("/banners", authGate, bannerHandler.HandleCreate)
	api.PATCH("/banners/reorder", authGate, bannerHandler.HandleReorder)
	api.PATCH("/banners/:id", authGate, bannerHandler.HandleUpdate)
	api.DELETE("/banners/:id", authGate, bannerHandler.HandleDelete)

	// Admin routes share one auth gate with an allow-list for the two
	// credential endpoints
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(tokenService, adminService,
		"/api/admin/login", "/api/admin/signup"))

	admin.POST("/signup", adminHandler.HandleSignup)
	admin.POST("/login", middleware.LoginRateLimitMiddleware(), adminHandler.HandleLogin)
	admin.GET("/dashboard-stats", adminHandler.HandleDashboardStats)
	admin.POST("/venues", roleGate, venueHandler.HandleCreate)
	admin.PATCH("/venues/:id", roleGate, venueHandler.HandleUpdate)
	admin.DELETE("/venues/:id", roleGate, venueHandler.HandleDelete)

	// Unknown routes get the JSON envelope too
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "fail",
			"message": fmt.Sprintf("Can't find %s on this server", c.Request.URL.Path),
		})
	})
}
