package main

import (
	"alcyxob/sportplan/internal/ai"
	"alcyxob/sportplan/internal/api"
	"alcyxob/sportplan/internal/config"
	"alcyxob/sportplan/internal/jobs"
	"alcyxob/sportplan/internal/logger"
	"alcyxob/sportplan/internal/repository/mongo"
	"alcyxob/sportplan/internal/schedule"
	"alcyxob/sportplan/internal/service"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title Sport Plan API
// @version 1.0
// @description API for generating sport training schedules and adjusting them as sessions are completed or skipped.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	logg, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize logger: %v", err)
	}
	defer logg.Sync()
	logg.Info("starting sportplan server")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logg.Fatal("could not connect to MongoDB", "error", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logg.Error("failed to disconnect MongoDB", "error", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logg.Info("database connection established", "db", cfg.Database.Name)

	// --- Ensure Indexes ---
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureSessionIndexes(ctx, appDB.Collection("scheduled_sessions"))
		mongo.EnsureHistoryIndexes(ctx, appDB.Collection("workout_history"))
		mongo.EnsureContentIndexes(ctx, appDB.Collection("workout_content"))
		logg.Info("index creation process completed")
	}()

	// --- Initialize Repositories ---
	sessionRepo := mongo.NewMongoSessionRepository(appDB)
	historyRepo := mongo.NewMongoHistoryRepository(appDB)
	contentRepo := mongo.NewMongoContentRepository(appDB)

	// --- Initialize Services ---
	clock := schedule.SystemClock()
	planService := service.NewPlanService(sessionRepo, clock, logg)
	adjustmentService := service.NewAdjustmentService(sessionRepo, historyRepo, clock, logg)

	// --- Content Generation (optional collaborator) ---
	var morningJob *jobs.MorningGeneration
	if cfg.AI.APIKey != "" {
		generator, err := ai.NewGeminiGenerator(cfg.AI)
		if err != nil {
			logg.Fatal("failed to initialize content generator", "error", err)
		}
		contentService := service.NewContentService(sessionRepo, historyRepo, contentRepo, generator, clock, logg)
		morningJob = jobs.NewMorningGeneration(contentService, logg)
		if err := morningJob.Start(cfg.Jobs.MorningGeneration); err != nil {
			logg.Fatal("failed to schedule morning generation", "error", err)
		}
	} else {
		logg.Warn("no AI API key configured, content generation disabled")
	}

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.JWT.Secret, planService, adjustmentService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logg.Info("server starting", "address", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("ListenAndServe error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info("shutting down server")

	if morningJob != nil {
		morningJob.Stop()
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logg.Fatal("server forced to shutdown", "error", err)
	}

	logg.Info("server exiting")
}
