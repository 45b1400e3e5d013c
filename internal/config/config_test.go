package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lessongen/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Empty(t, cfg.Server.APIKey)
		require.Empty(t, cfg.CORS.AllowedOrigins)
		require.False(t, cfg.CORS.AllowCredentials)
		require.Empty(t, cfg.Google.APIKey)
		require.Equal(t, 60, cfg.Google.Timeout)
		require.InDelta(t, 5.0, cfg.Google.RequestsPerSecond, 0)
		require.Empty(t, cfg.Groq.APIKey)
		require.Equal(t, "https://api.groq.com/openai/v1", cfg.Groq.BaseURL)
		require.Equal(t, 2, cfg.Groq.MaxRetries)
		require.Empty(t, cfg.Redis.URL)
		require.Equal(t, config.LedgerDriverSQLite, cfg.Ledger.Driver)
		require.Equal(t, "data/lessongen.db", cfg.Ledger.DSN)
		require.Equal(t, 3, cfg.Generation.MaxAttempts)
		require.Equal(t, "google", cfg.Generation.PrimaryProvider)
		require.InDelta(t, 0.7, cfg.Generation.PrimaryWeight, 1e-9)
		require.Equal(t, 2, cfg.Generation.UsageReadRetries)
		require.Equal(t, 15, cfg.Generation.ImageFetchTimeout)
		require.False(t, cfg.Generation.EnableEcho)
		require.False(t, cfg.Generation.CatalogWatch)
		require.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.CORS.AllowedMethods)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("SERVER_API_KEY", "worker-secret")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
		t.Setenv("GOOGLE_API_KEY", "google-test-key")
		t.Setenv("GOOGLE_REQUESTS_PER_SECOND", "0.5")
		t.Setenv("GROQ_API_KEY", "gsk-test-key")
		t.Setenv("GROQ_BASE_URL", "https://groq.test/openai/v1")
		t.Setenv("GROQ_TIMEOUT", "30")
		t.Setenv("REDIS_URL", "redis://localhost:6379/1")
		t.Setenv("LEDGER_DRIVER", "postgres")
		t.Setenv("LEDGER_DSN", "postgres://app@localhost/lessons")
		t.Setenv("GENERATION_MAX_ATTEMPTS", "5")
		t.Setenv("GENERATION_PRIMARY_WEIGHT", "0.5")
		t.Setenv("GENERATION_CATALOG_PATH", "/etc/lessongen/models.yaml")
		t.Setenv("GENERATION_ENABLE_ECHO", "true")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "worker-secret", cfg.Server.APIKey)
		require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
		require.Equal(t, "google-test-key", cfg.Google.APIKey)
		require.InDelta(t, 0.5, cfg.Google.RequestsPerSecond, 0)
		require.Equal(t, "gsk-test-key", cfg.Groq.APIKey)
		require.Equal(t, "https://groq.test/openai/v1", cfg.Groq.BaseURL)
		require.Equal(t, 30, cfg.Groq.Timeout)
		require.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
		require.Equal(t, config.LedgerDriverPostgres, cfg.Ledger.Driver)
		require.Equal(t, "postgres://app@localhost/lessons", cfg.Ledger.DSN)
		require.Equal(t, 5, cfg.Generation.MaxAttempts)
		require.InDelta(t, 0.5, cfg.Generation.PrimaryWeight, 1e-9)
		require.Equal(t, "/etc/lessongen/models.yaml", cfg.Generation.CatalogPath)
		require.True(t, cfg.Generation.EnableEcho)
	})
}

func TestLoad_WriteTimeoutCoversGeneration(t *testing.T) {
	t.Run("derived default outlasts the slowest generation", func(t *testing.T) {
		os.Clearenv()

		cfg := config.Load()

		// 3 attempts x 2 calls x (60s x 3 Groq tries + 15s image fetch).
		require.Equal(t, 1170*time.Second, cfg.GenerationBudget())
		require.Greater(t, time.Duration(cfg.Server.WriteTimeout)*time.Second, cfg.GenerationBudget())
	})

	t.Run("derived value follows provider settings", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("GOOGLE_TIMEOUT", "200")
		t.Setenv("GROQ_TIMEOUT", "10")
		t.Setenv("GENERATION_MAX_ATTEMPTS", "2")
		t.Setenv("GENERATION_IMAGE_FETCH_TIMEOUT", "0")

		cfg := config.Load()

		require.Equal(t, 800*time.Second, cfg.GenerationBudget())
		require.Greater(t, time.Duration(cfg.Server.WriteTimeout)*time.Second, cfg.GenerationBudget())
	})

	t.Run("explicit value is kept", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("SERVER_WRITE_TIMEOUT", "45")

		cfg := config.Load()

		require.Equal(t, 45, cfg.Server.WriteTimeout)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	os.Clearenv()
	cfg := config.Load()

	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Server, deps.Server)
	require.Same(t, &cfg.Google, deps.Google)
	require.Same(t, &cfg.Groq, deps.Groq)
	require.Same(t, &cfg.Ledger, deps.Ledger)
	require.Same(t, &cfg.Generation, deps.Generation)
}
