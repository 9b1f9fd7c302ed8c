package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/storefront/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("UI_SECRET", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://fakestoreapi.com", cfg.CatalogBaseURL)
	assert.Equal(t, 10*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, 6, cfg.PageSize)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Len(t, cfg.UISecret, 64, "development generates a secret")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CATALOG_BASE_URL", "http://catalog.internal")
	t.Setenv("CATALOG_TIMEOUT", "2s")
	t.Setenv("PAGE_SIZE", "12")
	t.Setenv("UI_SECRET", testSecret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://catalog.internal", cfg.CatalogBaseURL)
	assert.Equal(t, 2*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, testSecret, cfg.UISecret)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("UI_SECRET", "")

	_, err := config.Load()
	assert.ErrorContains(t, err, "UI_SECRET is required")
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("UI_SECRET", "short")

	_, err := config.Load()
	assert.ErrorContains(t, err, "at least 64 characters")
}

func TestLoad_InvalidPageSize(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("UI_SECRET", testSecret)
	t.Setenv("PAGE_SIZE", "0")

	_, err := config.Load()
	assert.ErrorContains(t, err, "PAGE_SIZE")
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &config.Config{LogLevel: tt.level}
		assert.Equal(t, tt.expected, cfg.SlogLevel(), tt.level)
	}
}
