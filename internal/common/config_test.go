package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"OLLAMA_API_URL", "OLLAMA_MODEL", "OLLAMA_PROBE_TIMEOUT",
		"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "ANTHROPIC_BASE_URL",
		"ANTHROPIC_MAX_TOKENS", "ANTHROPIC_TIMEOUT",
		"JOURNAL_DB_PATH", "SUMMARY_XLSX_PATH", "STRICT_DATE", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, 2*time.Second, cfg.Ollama.ProbeTimeout)
	assert.Equal(t, "claude-3-5-sonnet-latest", cfg.Anthropic.Model)
	assert.Equal(t, "https://api.anthropic.com", cfg.Anthropic.BaseURL)
	assert.Equal(t, 1024, cfg.Anthropic.MaxTokens)
	assert.Equal(t, time.Duration(0), cfg.Anthropic.Timeout)
	assert.False(t, cfg.StrictDate)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Journal.DBPath)
	assert.False(t, cfg.LocalConfigured())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OLLAMA_API_URL", "http://localhost:11434/api")
	t.Setenv("OLLAMA_MODEL", "llama3")
	t.Setenv("OLLAMA_PROBE_TIMEOUT", "500ms")
	t.Setenv("ANTHROPIC_MAX_TOKENS", "64")
	t.Setenv("STRICT_DATE", "true")
	t.Setenv("JOURNAL_DB_PATH", "/tmp/journal.db")

	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:11434/api", cfg.Ollama.APIURL)
	assert.Equal(t, "llama3", cfg.Ollama.Model)
	assert.Equal(t, 500*time.Millisecond, cfg.Ollama.ProbeTimeout)
	assert.Equal(t, 64, cfg.Anthropic.MaxTokens)
	assert.True(t, cfg.StrictDate)
	assert.Equal(t, "/tmp/journal.db", cfg.Journal.DBPath)
	assert.True(t, cfg.LocalConfigured())
}

func TestLocalConfiguredNeedsBoth(t *testing.T) {
	t.Setenv("OLLAMA_API_URL", "http://localhost:11434/api")
	t.Setenv("OLLAMA_MODEL", "")
	assert.False(t, LoadConfig().LocalConfigured())

	t.Setenv("OLLAMA_API_URL", "")
	t.Setenv("OLLAMA_MODEL", "llama3")
	assert.False(t, LoadConfig().LocalConfigured())
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	t.Setenv("ANTHROPIC_MAX_TOKENS", "not-a-number")
	assert.Equal(t, 1024, LoadConfig().Anthropic.MaxTokens)
}
