package main

import (
	"context"
	"os"

	dbadapter "chirp/internal/adapters/database"
	"chirp/internal/adapters/httpapi"
	redisadapter "chirp/internal/adapters/redis"
	"chirp/internal/config"
	feedapp "chirp/internal/core/feed/service"
	"chirp/internal/core/post"
	postapp "chirp/internal/core/post/service"
	"chirp/internal/core/user"
	userapp "chirp/internal/core/user/service"
	"chirp/internal/events"
	"chirp/internal/workers"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
		&post.Like{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}

	config.Logger.Info("Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	userRepo := dbadapter.NewUserRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	feedRedis := redisadapter.NewFeedRepositoryRedis(config.RedisClient)

	broker := events.NewBroker(config.Logger)

	userSvc := userapp.NewUserService(userRepo, []byte(os.Getenv("JWT_SECRET")))
	postSvc := postapp.NewPostService(postRepo, feedRedis, broker, config.Logger)
	feedSvc := feedapp.NewFeedService(feedRedis, postRepo, config.Logger)

	r := httpapi.SetupRoutes(userSvc, postSvc, feedSvc, broker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feedWorker := workers.NewFeedWorker(broker, feedRedis, config.Logger)
	go feedWorker.Run(ctx)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	config.Logger.Info("App is running...", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
