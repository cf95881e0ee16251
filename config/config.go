package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Store   StoreConfig
	Catalog CatalogConfig
	Log     LogConfig
}

type StoreConfig struct {
	Name        string
	Environment string
}

type CatalogConfig struct {
	// Path to a catalog JSON file. Empty means the compiled-in menu.
	Path string
}

type LogConfig struct {
	Level       string
	Format      string
	EnableColor bool
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Store: StoreConfig{
			Name:        getEnv("STORE_NAME", "Mamaka Bowls"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Format:      getEnv("LOG_FORMAT", "console"),
			EnableColor: getEnv("LOG_COLOR", "true") == "true",
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
