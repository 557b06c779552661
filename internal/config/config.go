package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// StorageConfig holds the on-disk layout: one JSON document for the card
// collection, a directory tree for committed attachments, and a flat
// staging directory for pending uploads.
type StorageConfig struct {
	DataDir    string
	CardsFile  string
	FilesDir   string
	StagingDir string
}

// LogConfig holds logging settings. FilePath enables rotated file output in
// addition to the console writer.
type LogConfig struct {
	Level      string
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	Port string
	// PublicBaseURL is the externally visible origin used when normalizing
	// attachment URLs. When empty, each request's own origin is used.
	PublicBaseURL string
	Storage       StorageConfig
	Log           LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	dataDir := getEnv("DATA_DIR", "data")
	return &AppConfig{
		Port:          getEnv("PORT", "8080"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		Storage: StorageConfig{
			DataDir:    dataDir,
			CardsFile:  getEnv("CARDS_FILE", filepath.Join(dataDir, "cards.json")),
			FilesDir:   getEnv("FILES_DIR", filepath.Join(dataDir, "files")),
			StagingDir: getEnv("STAGING_DIR", filepath.Join(dataDir, "staging")),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			FilePath:   getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 50),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
