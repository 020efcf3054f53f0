package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	clearEnv := func(t *testing.T) {
		t.Helper()
		for _, k := range []string{
			"STOREFRONT_APP_NAME",
			"STOREFRONT_APP_ENV",
			"STOREFRONT_API_BASE_URL",
			"STOREFRONT_API_TIMEOUT",
			"STOREFRONT_CDN_BASE_URL",
			"STOREFRONT_LOG_LEVEL",
			"STOREFRONT_LOG_FORMAT",
		} {
			t.Setenv(k, "")
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "storefront", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "http://localhost:8081/api/weblarek", cfg.API.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.Equal(t, "http://localhost:8081/content/weblarek", cfg.CDN.BaseURL)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "stdout", cfg.Log.Output)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STOREFRONT_API_BASE_URL", "https://shop.example/api")
		t.Setenv("STOREFRONT_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "https://shop.example/api", cfg.API.BaseURL)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("production env defaults to json logs", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STOREFRONT_APP_ENV", "production")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("rejects malformed api base url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STOREFRONT_API_BASE_URL", "not a url")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api.base_url")
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STOREFRONT_LOG_FORMAT", "xml")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
	})
}
