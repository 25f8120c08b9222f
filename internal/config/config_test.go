package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "PORT", "REDIS_ADDR"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3, cfg.AI.RetryAttempts)
	assert.Equal(t, 2*time.Second, cfg.AI.RetryBaseDelay)
	assert.Equal(t, 6, cfg.AI.FactCount)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PORT", "9090")
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("AI_RETRY_ATTEMPTS", "5")
	t.Setenv("AI_RETRY_BASE_DELAY", "500ms")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_FACTS_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://oceanica.example,http://localhost:5173")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "legacy-key", cfg.AI.APIKey)
	assert.Equal(t, 5, cfg.AI.RetryAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.AI.RetryBaseDelay)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 30*time.Minute, cfg.Cache.FactsTTL)
	assert.Equal(t, []string{"https://oceanica.example", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestLoadPrefersExplicitValues(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:8000")
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.HTTP.Addr)
	assert.Equal(t, "gemini-key", cfg.AI.APIKey)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"zero attempts", "AI_RETRY_ATTEMPTS", "0"},
		{"zero delay", "AI_RETRY_BASE_DELAY", "0s"},
		{"too many facts", "AI_FACT_COUNT", "21"},
		{"negative ttl", "CACHE_IMAGE_TTL", "-1m"},
		{"not a number", "REDIS_DB", "one"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadBoundsRetryAndBudget(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"too many attempts", map[string]string{"AI_RETRY_ATTEMPTS": "11"}},
		{"budget past write timeout", map[string]string{"AI_CALL_BUDGET": "2m", "HTTP_WRITE_TIMEOUT": "90s"}},
		{"budget equal to write timeout", map[string]string{"AI_CALL_BUDGET": "30s", "HTTP_WRITE_TIMEOUT": "30s"}},
		{"zero budget", map[string]string{"AI_CALL_BUDGET": "0s"}},
		{"zero cleanup", map[string]string{"CACHE_CLEANUP_INTERVAL": "0s"}},
		{"too many seed posts", map[string]string{"COMMUNITY_SEED_POSTS": "5000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDefaultBudgetFitsWriteTimeout(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, maxRetryAttempts)
	assert.Less(t, cfg.AI.CallBudget, cfg.HTTP.WriteTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Cache.Cleanup)
	assert.Zero(t, cfg.Community.SeedPosts)
}
