package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "audience-assist", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Classifier.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.Classifier.Model)
	assert.Equal(t, 10*time.Second, cfg.Classifier.Timeout())
	assert.Equal(t, 600*time.Second, cfg.Classifier.ReplyCacheTTL)
	assert.Equal(t, 20, cfg.Analytics.TimelineLimit)
	assert.True(t, cfg.Postgres.RunMigrations)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CLASSIFIER_TIMEOUT_SECONDS", "3")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("ANALYTICS_TIMELINE_LIMIT", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 3*time.Second, cfg.Classifier.Timeout())
	assert.False(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, 50, cfg.Analytics.TimelineLimit)
}

func TestGetEnvHelpersFallBackOnGarbage(t *testing.T) {
	t.Setenv("CLASSIFIER_TIMEOUT_SECONDS", "soon")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Classifier.TimeoutSeconds)
	assert.True(t, cfg.Postgres.RunMigrations)
}

func TestClassifierTimeoutFloor(t *testing.T) {
	assert.Equal(t, 10*time.Second, ClassifierConfig{TimeoutSeconds: 0}.Timeout())
	assert.Equal(t, 10*time.Second, ClassifierConfig{TimeoutSeconds: -1}.Timeout())
}
