package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rlozl15/pypost/internal/config"
	"github.com/rlozl15/pypost/internal/models"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: migrate [up|down]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "up":
		err = db.AutoMigrate(
			&models.User{},
			&models.Token{},
			&models.Profile{},
			&models.Post{},
			&models.PostLike{},
			&models.Comment{},
		)
		if err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		fmt.Println("migration complete")

	case "down":
		// drop in reverse dependency order
		err = db.Migrator().DropTable(
			&models.Comment{},
			&models.PostLike{},
			&models.Post{},
			&models.Profile{},
			&models.Token{},
			&models.User{},
		)
		if err != nil {
			log.Fatalf("drop failed: %v", err)
		}
		fmt.Println("tables dropped")

	default:
		log.Fatalf("unknown command: %s", command)
	}
}
