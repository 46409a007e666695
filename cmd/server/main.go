package main

import (
	"context"
	"net/http"
	"time"

	"owl/internal/api/handler"
	"owl/internal/api/middleware"
	"owl/internal/api/router"
	"owl/internal/cache"
	"owl/internal/config"
	"owl/internal/core/repository"
	"owl/internal/core/service"
	"owl/internal/token"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	client, db, err := config.ConnectMongoDB(cfg.Mongo)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Warn("failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	logger.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	cache.Initialize(cfg.RedisURL, logger)
	defer func() { _ = cache.Close() }()

	userRepo := repository.NewMongoUserRepository(db)
	problemRepo := repository.NewMongoProblemRepository(db)

	userService := service.NewUserService(userRepo)
	problemService := service.NewProblemService(problemRepo)
	tokens := token.NewHMACService(cfg.AccessKey)

	authHandler := handler.NewAuthHandler(tokens)
	userHandler := handler.NewUserHandler(userService)
	problemHandler := handler.NewProblemHandler(problemService, cfg.CacheTTL)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	r := router.NewRouter(authHandler, userHandler, problemHandler, authMiddleware, logger)

	logger.Info("Owl is solving", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
