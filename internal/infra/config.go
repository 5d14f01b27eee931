package infra

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything both binaries need. Loaded from YAML, then
// sensitive or deployment-specific values are overridden from the
// environment. Secrets belong in the environment, not the file.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Kraken struct {
		BaseURL    string `yaml:"base_url"`
		TimeoutSec int    `yaml:"timeout_sec"`
	} `yaml:"kraken"`

	Dashboard struct {
		ListenAddr         string `yaml:"listen_addr"`
		ProxyURL           string `yaml:"proxy_url"`
		RefreshIntervalSec int    `yaml:"refresh_interval_sec"`
	} `yaml:"dashboard"`

	Proxy struct {
		ListenAddr string   `yaml:"listen_addr"`
		APIKey     string   `yaml:"api_key"`
		APISecret  string   `yaml:"api_secret"`
		Pairs      []string `yaml:"pairs"`
		// Requests per second against the Kraken public API.
		RateLimit float64 `yaml:"rate_limit"`
	} `yaml:"proxy"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads and validates the YAML config at path, applying
// environment overrides on top.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// RefreshInterval returns the dashboard polling cadence.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Dashboard.RefreshIntervalSec) * time.Second
}

// KrakenTimeout returns the Kraken HTTP client timeout.
func (c *Config) KrakenTimeout() time.Duration {
	return time.Duration(c.Kraken.TimeoutSec) * time.Second
}

// UserAgent identifies this service to upstream APIs.
func (c *Config) UserAgent() string {
	return fmt.Sprintf("%s/%s", c.App.Name, c.App.Version)
}

// ProxyConfigured reports whether Kraken API credentials are present. The
// proxy only exposes this as a status flag; the public endpoints it consumes
// need no signing.
func (c *Config) ProxyConfigured() bool {
	return c.Proxy.APIKey != "" && c.Proxy.APISecret != ""
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Kraken.BaseURL, "http://") && !strings.HasPrefix(c.Kraken.BaseURL, "https://") {
		return fmt.Errorf("invalid Kraken base URL: %s", c.Kraken.BaseURL)
	}
	if c.Dashboard.ProxyURL != "" &&
		!strings.HasPrefix(c.Dashboard.ProxyURL, "http://") && !strings.HasPrefix(c.Dashboard.ProxyURL, "https://") {
		return fmt.Errorf("invalid proxy URL: %s", c.Dashboard.ProxyURL)
	}
	if c.Dashboard.RefreshIntervalSec <= 0 {
		return fmt.Errorf("refresh interval must be positive")
	}
	if c.Dashboard.ListenAddr == "" {
		return fmt.Errorf("dashboard listen address is required")
	}
	if c.Proxy.ListenAddr == "" {
		return fmt.Errorf("proxy listen address is required")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = AppName
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "dev"
	}
	if cfg.Kraken.BaseURL == "" {
		cfg.Kraken.BaseURL = "https://api.kraken.com/0/public"
	}
	if cfg.Kraken.TimeoutSec <= 0 {
		cfg.Kraken.TimeoutSec = 15
	}
	if cfg.Dashboard.RefreshIntervalSec <= 0 {
		cfg.Dashboard.RefreshIntervalSec = 60
	}
	if cfg.Proxy.RateLimit <= 0 {
		cfg.Proxy.RateLimit = 3
	}
}

// overrideWithEnv applies environment variables over file values. The
// environment always wins so deployments never have to edit the file for
// secrets or addresses.
func overrideWithEnv(cfg *Config) {
	if cfg.Proxy.APIKey != "" || cfg.Proxy.APISecret != "" {
		fmt.Println("WARNING: API secrets found in config file.")
		fmt.Println("  Prefer environment variables: KRAKEN_API_KEY, KRAKEN_API_SECRET")
	}

	if v := os.Getenv("KRAKEN_API_KEY"); v != "" {
		cfg.Proxy.APIKey = v
	}
	if v := os.Getenv("KRAKEN_API_SECRET"); v != "" {
		cfg.Proxy.APISecret = v
	}
	if v := os.Getenv("KRAKEN_BASE_URL"); v != "" {
		cfg.Kraken.BaseURL = v
	}
	if v := os.Getenv("DASHBOARD_LISTEN_ADDR"); v != "" {
		cfg.Dashboard.ListenAddr = v
	}
	if v := os.Getenv("XSTOCKS_PROXY_URL"); v != "" {
		cfg.Dashboard.ProxyURL = v
	}
	if v := os.Getenv("PROXY_LISTEN_ADDR"); v != "" {
		cfg.Proxy.ListenAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
