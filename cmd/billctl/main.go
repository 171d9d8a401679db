package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/jewelcraft/jewel-billing/cmd/billctl/cmd"
	"github.com/jewelcraft/jewel-billing/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	if err := logger.Setup(loggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	os.Exit(cmd.Execute())
}

func loggerConfig() logger.LogConfig {
	cfg := logger.DefaultConfig()
	if v := os.Getenv("BILLCTL_LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("BILLCTL_LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("BILLCTL_LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	return cfg
}
