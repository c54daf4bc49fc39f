package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DatasetConfig describes one chart data source.
type DatasetConfig struct {
	Name    string `yaml:"name"`
	CSVPath string `yaml:"csv_path"`
	URL     string `yaml:"url"`
	APIKey  string `yaml:"api_key"`
	XField  string `yaml:"x_field"`
	YField  string `yaml:"y_field"`
}

// Config holds all application configuration.
type Config struct {
	Datasets []DatasetConfig `yaml:"datasets"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
		DigestCron  string `yaml:"digest_cron"`
		PruneCron   string `yaml:"prune_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	State struct {
		File string `yaml:"file"`
	} `yaml:"state"`
	Webhook struct {
		URL            string  `yaml:"url"`
		AlertThreshold float64 `yaml:"alert_threshold"`
	} `yaml:"webhook"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Retention struct {
		Days int `yaml:"days"`
	} `yaml:"retention"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A .env file next to the process is honored if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

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
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		cfg.Webhook.URL = v
	}
	if v := os.Getenv("ALERT_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Webhook.AlertThreshold = f
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("STATE_FILE"); v != "" {
		cfg.State.File = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 */15 * * * *"
	}
	if cfg.Schedule.DigestCron == "" {
		cfg.Schedule.DigestCron = "0 0 8 * * *"
	}
	if cfg.Schedule.PruneCron == "" {
		cfg.Schedule.PruneCron = "0 0 3 * * 0"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/cascade.db"
	}
	if cfg.State.File == "" {
		cfg.State.File = "data/chart_state.json"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8084"
	}
	if cfg.Retention.Days == 0 {
		cfg.Retention.Days = 90
	}
	for i := range cfg.Datasets {
		if cfg.Datasets[i].XField == "" {
			cfg.Datasets[i].XField = "x"
		}
		if cfg.Datasets[i].YField == "" {
			cfg.Datasets[i].YField = "y"
		}
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Datasets) == 0 {
		return fmt.Errorf("at least one dataset is required")
	}
	seen := make(map[string]bool, len(c.Datasets))
	for _, ds := range c.Datasets {
		if ds.Name == "" {
			return fmt.Errorf("dataset name is required")
		}
		if seen[ds.Name] {
			return fmt.Errorf("duplicate dataset name %q", ds.Name)
		}
		seen[ds.Name] = true
		if ds.CSVPath == "" && ds.URL == "" {
			return fmt.Errorf("dataset %s: csv_path or url is required", ds.Name)
		}
		if ds.CSVPath != "" && ds.URL != "" {
			return fmt.Errorf("dataset %s: csv_path and url are mutually exclusive", ds.Name)
		}
	}
	if c.Retention.Days < 0 {
		return fmt.Errorf("retention.days must not be negative")
	}
	return nil
}
