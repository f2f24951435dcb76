package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Theo3883/Hour-Tracking-Application/internal/config"
	"github.com/Theo3883/Hour-Tracking-Application/internal/server"
	applogger "github.com/Theo3883/Hour-Tracking-Application/pkg/logger"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg := config.New()

	logger, err := applogger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	srv, err := server.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
