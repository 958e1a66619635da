package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.API.RetryAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Cache.Duration)
	assert.Equal(t, 90, cfg.Monitor.AnalysisDays)
	assert.Equal(t, []string{"AAPL", "GOOGL", "MSFT", "AMZN"}, cfg.Monitor.Watchlist)
	assert.Equal(t, 5.0, cfg.Alerts.SignificantMovePercent)
}

func TestLoad_YAMLValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  key: yaml-key
  timeout: 10s
monitor:
  interval: 1m
  watchlist: [TSLA, NVDA]
  analysis_days: 180
database:
  sqlite_path: data/watch.db
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml-key", cfg.API.Key)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, time.Minute, cfg.Monitor.Interval)
	assert.Equal(t, []string{"TSLA", "NVDA"}, cfg.Monitor.Watchlist)
	assert.Equal(t, 180, cfg.Monitor.AnalysisDays)
	assert.Equal(t, "data/watch.db", cfg.Database.SQLitePath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NASDAQ_API_KEY", "env-key")
	t.Setenv("WATCHLIST", " ibm , orcl ,")
	t.Setenv("MONITOR_INTERVAL", "45s")
	t.Setenv("ANALYSIS_DAYS", "120")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.API.Key)
	assert.Equal(t, []string{"ibm", "orcl"}, cfg.Monitor.Watchlist)
	assert.Equal(t, 45*time.Second, cfg.Monitor.Interval)
	assert.Equal(t, 120, cfg.Monitor.AnalysisDays)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	// An empty API key is valid; the binary runs against mock data without one.
	cfg.API.Key = ""
	require.NoError(t, cfg.Validate())

	cfg.Monitor.Interval = 100 * time.Millisecond
	require.Error(t, cfg.Validate())

	cfg.Monitor.Interval = time.Minute
	cfg.Monitor.AnalysisDays = 0
	require.Error(t, cfg.Validate())
}
