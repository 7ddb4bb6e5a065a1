package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	DBDriver string
	DBPath   string

	CORSOrigins        string
	RateLimitPerMinute int

	// Extraction
	Extractor      string
	OllamaURL      string
	OllamaModel    string
	GeminiAPIKey   string
	GeminiModel    string
	ExtractTimeout time.Duration
}

var AppConfig *Config

// Load reads .env (if present) and the environment into AppConfig
func Load() error {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     GetEnv("PORT", "3000"),
		Env:      GetEnv("ENV", "development"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),

		DBDriver: GetEnv("DB_DRIVER", "sqlite3"),
		DBPath:   GetEnv("DB_PATH", "./data/action-notes.db"),

		CORSOrigins:        GetEnv("CORS_ORIGINS", "*"),
		RateLimitPerMinute: GetEnvInt("RATE_LIMIT_PER_MINUTE", 200),

		Extractor:      GetEnv("EXTRACTOR", "ollama"),
		OllamaURL:      GetEnv("OLLAMA_URL", "http://127.0.0.1:11434"),
		OllamaModel:    GetEnv("OLLAMA_MODEL", "llama3.1:8b"),
		GeminiAPIKey:   GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:    GetEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		ExtractTimeout: GetEnvDuration("EXTRACT_TIMEOUT", 60*time.Second),
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

func (c *Config) validate() error {
	switch c.Extractor {
	case "ollama":
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when EXTRACTOR=gemini")
		}
	default:
		return fmt.Errorf("unknown EXTRACTOR %q (want ollama or gemini)", c.Extractor)
	}

	if c.RateLimitPerMinute < 1 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// IsProduction reports whether the app runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt falls back to defaultValue when the variable is unset or not a number
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// GetEnvDuration parses values like "90s" or "2m"
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
