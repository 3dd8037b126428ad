package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server and the message workflow read from the
// environment. Tunables (iteration cap, history window, suggestion limits)
// are configuration rather than hardcoded invariants.
type Config struct {
	Addr   string
	DBPath string

	// InternalKey is the shared credential every store call must carry.
	InternalKey string

	Provider string
	APIKey   string

	CodingModel string
	TitleModel  string

	MaxIterations int
	HistoryLimit  int

	SuggestionDebounce  time.Duration
	SuggestionRateMax   int
	SuggestionRateEvery time.Duration
}

// Load reads .env from the project root (when present) and builds a Config
// from the environment with defaults applied.
func Load() (*Config, error) {
	if root, err := findProjectRoot(); err == nil {
		_ = godotenv.Load(filepath.Join(root, ".env"))
	}

	cfg := &Config{
		Addr:                getEnv("POLARIS_ADDR", ":8090"),
		DBPath:              getEnv("POLARIS_DB_PATH", "polaris.db"),
		InternalKey:         os.Getenv("POLARIS_INTERNAL_KEY"),
		Provider:            getEnv("POLARIS_LLM_PROVIDER", "gemini"),
		APIKey:              os.Getenv("POLARIS_LLM_API_KEY"),
		CodingModel:         getEnv("POLARIS_CODING_MODEL", "gemini-3.0-flash"),
		TitleModel:          getEnv("POLARIS_TITLE_MODEL", "gemini-2.5-flash"),
		MaxIterations:       getEnvInt("POLARIS_MAX_ITERATIONS", 20),
		HistoryLimit:        getEnvInt("POLARIS_HISTORY_LIMIT", 10),
		SuggestionDebounce:  getEnvDuration("POLARIS_SUGGESTION_DEBOUNCE", 300*time.Millisecond),
		SuggestionRateMax:   getEnvInt("POLARIS_SUGGESTION_RATE_MAX", 6),
		SuggestionRateEvery: getEnvDuration("POLARIS_SUGGESTION_RATE_WINDOW", time.Minute),
	}

	if cfg.MaxIterations <= 0 {
		return nil, fmt.Errorf("POLARIS_MAX_ITERATIONS must be positive")
	}
	if cfg.HistoryLimit <= 0 {
		return nil, fmt.Errorf("POLARIS_HISTORY_LIMIT must be positive")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
