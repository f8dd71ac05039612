package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sarang-church/backend/config"
	"github.com/sarang-church/backend/handlers"
	"github.com/sarang-church/backend/services"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	if err := run(); err != nil {
		logrus.Fatal(err)
	}
}

// run owns the defers; logrus.Fatal exits the process and would skip them.
func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Connect to MongoDB Atlas
	mongo, err := services.NewMongoService(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer mongo.Close()

	store := services.NewNewsService(mongo, cfg.NewsCollection)

	// Setup Gin
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handlers.NewRouter(cfg, store)

	// Start server
	logrus.Infof("Starting church backend on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
