package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN           string
	Environment     string
	HTTPAddr        string
	JWTSecret       string
	StaticTokens    string
	MigrationsDir   string
	SlotHorizonDays int
}

const defaultHorizonDays = 14

func Load() (*Config, error) {
	// .env is optional; real environment variables win either way.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		Environment:   os.Getenv("ENV"),
		HTTPAddr:      os.Getenv("HTTP_ADDR"),
		JWTSecret:     os.Getenv("JWT_HMAC_SECRET"),
		StaticTokens:  os.Getenv("STATIC_TOKENS"),
		MigrationsDir: os.Getenv("MIGRATIONS_DIR"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = "migrations"
	}

	cfg.SlotHorizonDays = defaultHorizonDays
	if v := os.Getenv("SLOT_HORIZON_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 1 {
			return nil, fmt.Errorf("SLOT_HORIZON_DAYS must be a positive integer, got %q", v)
		}
		cfg.SlotHorizonDays = days
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_HMAC_SECRET is required but not set")
	}

	return cfg, nil
}
