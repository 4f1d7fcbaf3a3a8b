package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/pmhub/mentor-back/internal/api"
	"github.com/pmhub/mentor-back/internal/config"
	"github.com/pmhub/mentor-back/internal/cron"
	"github.com/pmhub/mentor-back/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	st, err := store.Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer st.Close()

	if _, err := cron.StartJobs(st); err != nil {
		log.Fatalf("failed to start cron jobs: %v", err)
	}

	r := api.SetupRouter(cfg, st)

	log.Println("Server running on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
