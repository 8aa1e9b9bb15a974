package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("ASSEMBLYAI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 3*time.Second, cfg.Assembly.PollInterval)
	assert.Equal(t, "https://api.groq.com", cfg.Groq.BaseURL)
	assert.Equal(t, "http://localhost:8090", cfg.NLP.BaseURL)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Storage.Enabled)
}

func TestLoad_MissingGroqKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("ASSEMBLYAI_API_KEY", "test-key")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("ASSEMBLYAI_API_KEY", "test-key")
	t.Setenv("PORT", "9999")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example,http://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Redis.RateWindow)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_MissingAssemblyKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("ASSEMBLYAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ASSEMBLYAI_API_KEY")
}

func TestGetEnvAsDuration_Invalid(t *testing.T) {
	t.Setenv("ASSEMBLYAI_POLL_INTERVAL", "not-a-duration")

	d := getEnvAsDuration("ASSEMBLYAI_POLL_INTERVAL", "3s")
	assert.Equal(t, 3*time.Second, d)
}
