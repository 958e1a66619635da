package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	API struct {
		Key           string        `yaml:"key"`
		BaseURL       string        `yaml:"base_url"`
		Timeout       time.Duration `yaml:"timeout"`
		RetryAttempts int           `yaml:"retry_attempts"`
		RetryDelay    time.Duration `yaml:"retry_delay"`
	} `yaml:"api"`
	Cache struct {
		Duration time.Duration `yaml:"duration"`
	} `yaml:"cache"`
	Monitor struct {
		Interval         time.Duration `yaml:"interval"`
		AnalysisInterval time.Duration `yaml:"analysis_interval"`
		Watchlist        []string      `yaml:"watchlist"`
		AnalysisDays     int           `yaml:"analysis_days"`
	} `yaml:"monitor"`
	Alerts struct {
		SignificantMovePercent float64 `yaml:"significant_move_percent"`
		MajorMovePercent       float64 `yaml:"major_move_percent"`
		VolumeMultiple         float64 `yaml:"volume_multiple"`
	} `yaml:"alerts"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; env and defaults
// still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("NASDAQ_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("NASDAQ_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Monitor.Watchlist = splitList(v)
	}
	if v := os.Getenv("MONITOR_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Monitor.Interval = d
		}
	}
	if v := os.Getenv("ANALYSIS_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Monitor.AnalysisDays = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 30 * time.Second
	}
	if cfg.API.RetryAttempts == 0 {
		cfg.API.RetryAttempts = 3
	}
	if cfg.API.RetryDelay == 0 {
		cfg.API.RetryDelay = 2 * time.Second
	}
	if cfg.Cache.Duration == 0 {
		cfg.Cache.Duration = 5 * time.Minute
	}
	if cfg.Monitor.Interval == 0 {
		cfg.Monitor.Interval = 5 * time.Minute
	}
	if cfg.Monitor.AnalysisInterval == 0 {
		cfg.Monitor.AnalysisInterval = time.Hour
	}
	if len(cfg.Monitor.Watchlist) == 0 {
		cfg.Monitor.Watchlist = []string{"AAPL", "GOOGL", "MSFT", "AMZN"}
	}
	if cfg.Monitor.AnalysisDays == 0 {
		cfg.Monitor.AnalysisDays = 90
	}
	if cfg.Alerts.SignificantMovePercent == 0 {
		cfg.Alerts.SignificantMovePercent = 5.0
	}
	if cfg.Alerts.MajorMovePercent == 0 {
		cfg.Alerts.MajorMovePercent = 10.0
	}
	if cfg.Alerts.VolumeMultiple == 0 {
		cfg.Alerts.VolumeMultiple = 2.0
	}

	return cfg, nil
}

// Validate checks field constraints. An empty API key is allowed; the
// entrypoint falls back to the mock data source without one.
func (c *Config) Validate() error {
	if c.Monitor.AnalysisDays < 1 {
		return fmt.Errorf("monitor.analysis_days must be positive")
	}
	if c.Monitor.Interval < time.Second {
		return fmt.Errorf("monitor.interval must be at least 1s")
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
