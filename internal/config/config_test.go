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

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, SourceHTTP, cfg.Source.Kind)
	assert.Equal(t, "status", cfg.Board.DefaultGrouping)
	assert.Equal(t, "priority", cfg.Board.DefaultOrdering)
	assert.Equal(t, "discovery", cfg.Board.GroupFallback)
	assert.Equal(t, 60*time.Second, cfg.Source.CacheTTL())
	assert.Zero(t, cfg.Source.RefreshInterval())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("SOURCE_KIND", "postgres")
	t.Setenv("SOURCE_REFRESH_INTERVAL_SECONDS", "15")
	t.Setenv("BOARD_DEFAULT_GROUPING", "user")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, SourcePostgres, cfg.Source.Kind)
	assert.Equal(t, 15*time.Second, cfg.Source.RefreshInterval())
	assert.Equal(t, "user", cfg.Board.DefaultGrouping)
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SOURCE_KIND", "ftp")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SOURCE_KIND", "http")
	t.Setenv("REDIS_DB", "x")
	_, err = Load()
	assert.Error(t, err)
}
