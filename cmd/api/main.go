package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"kanguya-builders/marketing-site/site-backend/internal/assets"
	"kanguya-builders/marketing-site/site-backend/internal/config"
	"kanguya-builders/marketing-site/site-backend/internal/contact"
	"kanguya-builders/marketing-site/site-backend/internal/estimator"
	"kanguya-builders/marketing-site/site-backend/internal/projects"
	"kanguya-builders/marketing-site/site-backend/internal/quotes"
	"kanguya-builders/marketing-site/site-backend/internal/reviews"
	"kanguya-builders/marketing-site/site-backend/internal/storage"
)

func main() {
	// Load .env if present, real env vars still win
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.App.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Seed the in-memory store with the project catalog
	seed, err := storage.LoadSeed(cfg.Seed.ProjectsFile)
	if err != nil {
		logger.Fatal("Failed to load project seed", zap.Error(err))
	}
	store := storage.NewMemStorage(seed)
	logger.Info("In-memory store initialized", zap.Int("seed_projects", len(seed)))

	// Initialize modules
	projectsHandler := projects.NewHandler(projects.NewService(store, logger), logger)
	reviewsService := reviews.NewService(store, logger)
	reviewsHandler := reviews.NewHandler(reviewsService, logger)
	quotesHandler := quotes.NewHandler(quotes.NewService(store, logger), logger)
	contactHandler := contact.NewHandler(contact.NewService(store, logger), logger)
	estimatorHandler := estimator.NewHandler(estimator.NewService())
	assetsHandler := assets.NewHandler(cfg.Assets.Dir, logger)

	// Setup Router
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// CORS Middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Register Routes
	api := router.Group("/api")
	{
		projectsHandler.RegisterRoutes(api)
		reviewsHandler.RegisterRoutes(api)
		quotesHandler.RegisterRoutes(api)
		contactHandler.RegisterRoutes(api)
		estimatorHandler.RegisterRoutes(api)
	}
	assetsHandler.RegisterRoutes(router)

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	// Hourly digest of reviews waiting for moderation
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		pending := reviewsService.CountPending(context.Background())
		if pending > 0 {
			logger.Info("Reviews awaiting moderation", zap.Int("pending", pending))
		}
	}); err != nil {
		logger.Fatal("Failed to schedule moderation digest", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start Server
	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen: %s\n", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.Int("port", cfg.Server.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", zap.Error(err))
	}

	logger.Info("Server exiting")
}
