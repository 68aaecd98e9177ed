package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Ollama     OllamaConfig
	Anthropic  AnthropicConfig
	Journal    JournalConfig
	Export     ExportConfig
	StrictDate bool
	LogLevel   string
}

// OllamaConfig holds local-model backend configuration
type OllamaConfig struct {
	APIURL       string
	Model        string
	ProbeTimeout time.Duration
}

// AnthropicConfig holds cloud backend configuration
type AnthropicConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
	Timeout   time.Duration
}

// JournalConfig holds rename-journal configuration; an empty path disables it.
type JournalConfig struct {
	DBPath string
}

// ExportConfig holds summary-export configuration; an empty path disables it.
type ExportConfig struct {
	XLSXPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Ollama: OllamaConfig{
			APIURL:       getEnv("OLLAMA_API_URL", ""),
			Model:        getEnv("OLLAMA_MODEL", ""),
			ProbeTimeout: getEnvAsDuration("OLLAMA_PROBE_TIMEOUT", 2*time.Second),
		},
		Anthropic: AnthropicConfig{
			APIKey:    getEnv("ANTHROPIC_API_KEY", ""),
			Model:     getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-latest"),
			BaseURL:   getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
			MaxTokens: getEnvAsInt("ANTHROPIC_MAX_TOKENS", 1024),
			Timeout:   getEnvAsDuration("ANTHROPIC_TIMEOUT", 0),
		},
		Journal:    JournalConfig{DBPath: getEnv("JOURNAL_DB_PATH", "")},
		Export:     ExportConfig{XLSXPath: getEnv("SUMMARY_XLSX_PATH", "")},
		StrictDate: getEnvAsBool("STRICT_DATE", false),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

// LocalConfigured reports whether the local backend's configuration
// preconditions are met. A liveness probe still has to pass before the
// local backend is actually selected.
func (c *Config) LocalConfigured() bool {
	return c.Ollama.APIURL != "" && c.Ollama.Model != ""
}

// Helper functions for environment variable parsing
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
