package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UpstreamURL != "https://www.python.org" {
		t.Errorf("UpstreamURL = %q", cfg.UpstreamURL)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v, want 15s", cfg.RequestTimeout)
	}
	if cfg.DownloadTimeout != 120*time.Second {
		t.Errorf("DownloadTimeout = %v, want 120s", cfg.DownloadTimeout)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeTempConfig(t, "pyvm.toml", `
upstream_url = "https://mirror.example.com"
max_retries = 5
retry_delay_seconds = 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UpstreamURL != "https://mirror.example.com" {
		t.Errorf("UpstreamURL = %q", cfg.UpstreamURL)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
	if cfg.RetryDelay != time.Second {
		t.Errorf("RetryDelay = %v, want 1s", cfg.RetryDelay)
	}
	// Unset keys keep defaults.
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v, want default 15s", cfg.RequestTimeout)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "pyvm.yaml", `
upstream_url: https://mirror.example.com/
request_timeout_seconds: 30
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UpstreamURL != "https://mirror.example.com" {
		t.Errorf("UpstreamURL = %q, want trailing slash trimmed", cfg.UpstreamURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeTempConfig(t, "pyvm.json", `{"download_timeout_seconds": 300}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DownloadTimeout != 300*time.Second {
		t.Errorf("DownloadTimeout = %v, want 300s", cfg.DownloadTimeout)
	}
}

func TestLoadExtensionlessSniffing(t *testing.T) {
	tomlPath := writeTempConfig(t, "pyvmrc-toml", "max_retries = 7\n")
	yamlPath := writeTempConfig(t, "pyvmrc-yaml", "max_retries: 7\n")

	for _, path := range []string{tomlPath, yamlPath} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", path, err)
		}
		if cfg.MaxRetries != 7 {
			t.Errorf("Load(%s) MaxRetries = %d, want 7", path, cfg.MaxRetries)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeTempConfig(t, "broken.toml", "max_retries = = 3")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed file")
	}
}
