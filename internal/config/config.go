package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config drukwater-admin client configuration
type Config struct {
	API struct {
		BaseURL string
		Timeout time.Duration
	}
	// TokenDir is where the persisted session token lives. Only the token
	// survives restarts; everything else is refetched on boot.
	TokenDir string
	Log      struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	// Optional .env for local dev; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.API.BaseURL = getEnv("DWA_API_BASE_URL", "http://localhost:5000/api")
	cfg.API.Timeout = time.Duration(parseInt(getEnv("DWA_API_TIMEOUT_SECONDS", "30"), 30)) * time.Second
	cfg.TokenDir = getEnv("DWA_TOKEN_DIR", defaultTokenDir())
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "console")

	return cfg
}

func defaultTokenDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "drukwater-admin")
	}
	return ".drukwater-admin"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
