package app

import (
	"context"
	"go-cuts-api/config"
	"go-cuts-api/db"
	"go-cuts-api/graph"
	"go-cuts-api/handler"
	"go-cuts-api/logger"
	"go-cuts-api/repository"
	"go-cuts-api/router"
	"go-cuts-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	if config.AppConfig.JWT.AccessSecret == config.DefaultTokenSecret {
		logger.Log.Warn("Running with the default token secret; tokens are forgeable. Do not deploy like this.")
	}

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(); err != nil {
		logger.Log.Fatalf("Error running database migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Wiring All Layers Together ---

	tokenService := service.NewTokenService(service.TokenConfig{
		AccessSecret:  []byte(config.AppConfig.JWT.AccessSecret),
		RefreshSecret: []byte(config.AppConfig.JWT.RefreshSecret),
		AccessTTL:     config.AppConfig.AccessTTL(),
		RefreshTTL:    config.AppConfig.RefreshTTL(),
	})

	userRepo := repository.NewUserRepository(database)
	voteRepo := repository.NewVoteRepository(database)
	reviewRepo := repository.NewReviewRepository(database)

	authService := service.NewAuthService(userRepo, tokenService,
		config.AppConfig.RefreshTTL(), config.AppConfig.IsProduction())
	filmService := service.NewFilmService()
	cutService := service.NewCutService(voteRepo, redisClient)
	reviewService := service.NewReviewService(reviewRepo, userRepo)

	uploadService, err := service.NewUploadService(context.Background(), service.UploadConfig{
		Region:          config.AppConfig.AWS.Region,
		Bucket:          config.AppConfig.AWS.Bucket,
		AccessKeyID:     config.AppConfig.AWS.AccessKeyID,
		SecretAccessKey: config.AppConfig.AWS.SecretAccessKey,
	}, userRepo)
	if err != nil {
		logger.Log.Fatalf("Error configuring the upload service: %v", err)
	}

	schema, err := graph.NewSchema(&graph.Resolver{
		Auth:    authService,
		Films:   filmService,
		Cuts:    cutService,
		Reviews: reviewService,
		Uploads: uploadService,
	})
	if err != nil {
		logger.Log.Fatalf("Error building GraphQL schema: %v", err)
	}

	gqlHandler := handler.NewGraphQLHandler(schema)
	r := router.NewRouter(gqlHandler, tokenService)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
