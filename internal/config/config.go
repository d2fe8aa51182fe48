package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port        string
	DatabaseDSN string
	// How often the expiry watcher sweeps for jobs past their deadline.
	ExpirySweepInterval time.Duration

	// Optional admin account seeded at startup; without it the /admin routes
	// stay unreachable on a fresh database.
	AdminEmail    string
	AdminPassword string
}

// Load reads the configuration from environment variables. godotenv has
// already populated them from .env in main.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=password dbname=jobboard port=5432 sslmode=disable"
		log.Println("DATABASE_DSN not set, using local default")
	}

	interval := 15 * time.Minute
	if raw := os.Getenv("EXPIRY_SWEEP_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("invalid EXPIRY_SWEEP_INTERVAL %q, using default: %v", raw, err)
		} else {
			interval = parsed
		}
	}

	return &Config{
		Port:                port,
		DatabaseDSN:         dsn,
		ExpirySweepInterval: interval,
		AdminEmail:          os.Getenv("ADMIN_EMAIL"),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
	}
}
