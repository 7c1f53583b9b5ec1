package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	DataDir   string
	StaticDir string
}

// Load reads configuration from the environment (with an optional .env
// file) and creates the data directory if it does not exist yet.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		// .env is optional
	}

	cfg := AppConfig{
		Port:      getEnv("PORT", "8080"),
		DataDir:   getEnv("DATA_DIR", "data"),
		StaticDir: getEnv("STATIC_DIR", "static"),
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory %s: %v", cfg.DataDir, err)
	}
	return cfg
}

func (c AppConfig) ActivitiesFile() string {
	return filepath.Join(c.DataDir, "activities.json")
}

func (c AppConfig) TeachersFile() string {
	return filepath.Join(c.DataDir, "teachers.json")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
