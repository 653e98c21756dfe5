package main

import (
	"log"
	"os"

	"github.com/rlozl15/pypost/internal/config"
	"github.com/rlozl15/pypost/internal/routes"
	"github.com/rlozl15/pypost/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("starting server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	imageService, err := services.NewCloudinaryService(cfg)
	if err != nil {
		log.Fatalf("failed to initialize image storage: %v", err)
	}

	router := routes.SetupRouter(cfg, db, imageService)

	log.Printf("listening on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
