package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port         string
	PredictURL   string
	LogStorePath string
	WebDir       string
	DisplayLoc   *time.Location
}

// Load reads an optional .env file and the environment. Missing values
// fall back to defaults suitable for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: could not load .env file: %v", err)
	}

	loc := time.Local
	if tz := os.Getenv("DISPLAY_TZ"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatalf("invalid DISPLAY_TZ %q: %v", tz, err)
		}
		loc = l
	}

	return &Config{
		Port:         envOr("PORT", "8080"),
		PredictURL:   envOr("PREDICT_URL", "http://localhost:5000/predict"),
		LogStorePath: envOr("LOG_STORE_PATH", "data/logs.json"),
		WebDir:       envOr("WEB_DIR", "web"),
		DisplayLoc:   loc,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
