package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Export   ExportConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
}

// DatabaseConfig holds the embedded database configuration
type DatabaseConfig struct {
	Path          string
	BusyTimeoutMS int
}

// ExportConfig holds catalog export configuration
type ExportConfig struct {
	Directory string
}

// Load loads configuration from the environment, reading a .env file
// first when one is present.
func Load() (*Config, error) {
	// A missing .env file is not an error; real env vars still apply.
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "business-boost"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Path:          getEnv("DB_PATH", "business.db"),
			BusyTimeoutMS: getEnvAsInt("DB_BUSY_TIMEOUT_MS", 5000),
		},
		Export: ExportConfig{
			Directory: getEnv("EXPORT_DIR", "."),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
