package infra

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const minimalConfig = `
dashboard:
  listen_addr: ":8080"
proxy:
  listen_addr: ":8090"
`

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Kraken.BaseURL != "https://api.kraken.com/0/public" {
		t.Errorf("base URL = %q", cfg.Kraken.BaseURL)
	}
	if cfg.RefreshInterval() != 60*time.Second {
		t.Errorf("refresh interval = %v, want 60s", cfg.RefreshInterval())
	}
	if cfg.KrakenTimeout() != 15*time.Second {
		t.Errorf("timeout = %v, want 15s", cfg.KrakenTimeout())
	}
	if cfg.Proxy.RateLimit != 3 {
		t.Errorf("rate limit = %v, want 3", cfg.Proxy.RateLimit)
	}
	if cfg.App.Name != AppName || cfg.App.Version != "dev" {
		t.Errorf("app identity = %s/%s", cfg.App.Name, cfg.App.Version)
	}
	if cfg.ProxyConfigured() {
		t.Error("ProxyConfigured should be false without credentials")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("KRAKEN_API_KEY", "key-from-env")
	t.Setenv("KRAKEN_API_SECRET", "secret-from-env")
	t.Setenv("KRAKEN_BASE_URL", "http://localhost:9999")
	t.Setenv("DASHBOARD_LISTEN_ADDR", ":18080")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Proxy.APIKey != "key-from-env" || cfg.Proxy.APISecret != "secret-from-env" {
		t.Error("credentials should come from environment")
	}
	if !cfg.ProxyConfigured() {
		t.Error("ProxyConfigured should be true with env credentials")
	}
	if cfg.Kraken.BaseURL != "http://localhost:9999" {
		t.Errorf("base URL = %q, env should win over default", cfg.Kraken.BaseURL)
	}
	if cfg.Dashboard.ListenAddr != ":18080" {
		t.Errorf("listen addr = %q", cfg.Dashboard.ListenAddr)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad base URL", `
kraken:
  base_url: "ftp://example.com"
dashboard:
  listen_addr: ":8080"
proxy:
  listen_addr: ":8090"
`},
		{"bad proxy URL", `
dashboard:
  listen_addr: ":8080"
  proxy_url: "not-a-url"
proxy:
  listen_addr: ":8090"
`},
		{"missing dashboard addr", `
proxy:
  listen_addr: ":8090"
`},
		{"missing proxy addr", `
dashboard:
  listen_addr: ":8080"
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestUserAgent(t *testing.T) {
	cfg := &Config{}
	cfg.App.Name = "kraken-dashboard"
	cfg.App.Version = "1.2.0"
	if got := cfg.UserAgent(); got != "kraken-dashboard/1.2.0" {
		t.Errorf("UserAgent = %q", got)
	}
}
