package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format represents the file format of a config file.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatTOML
	FormatJSON
)

// fileConfig is the on-disk shape. Durations are whole seconds so the same
// keys work across all three formats.
type fileConfig struct {
	UpstreamURL            string `toml:"upstream_url" yaml:"upstream_url" json:"upstream_url"`
	MaxRetries             int    `toml:"max_retries" yaml:"max_retries" json:"max_retries"`
	RetryDelaySeconds      int    `toml:"retry_delay_seconds" yaml:"retry_delay_seconds" json:"retry_delay_seconds"`
	RequestTimeoutSeconds  int    `toml:"request_timeout_seconds" yaml:"request_timeout_seconds" json:"request_timeout_seconds"`
	DownloadTimeoutSeconds int    `toml:"download_timeout_seconds" yaml:"download_timeout_seconds" json:"download_timeout_seconds"`
}

// Load reads a config file and overlays its values on the defaults.
// Unset keys keep their default values.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	var fc fileConfig
	switch detectFormat(path, content) {
	case FormatTOML:
		err = toml.Unmarshal(content, &fc)
	case FormatYAML:
		err = yaml.Unmarshal(content, &fc)
	case FormatJSON:
		err = json.Unmarshal(content, &fc)
	default:
		return nil, fmt.Errorf("cannot determine format of config file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse config file %s: %w", path, err)
	}

	cfg := Default()
	fc.apply(cfg)
	return cfg, nil
}

// apply overlays the set fields of the file config onto cfg.
func (f fileConfig) apply(cfg *Config) {
	if f.UpstreamURL != "" {
		cfg.UpstreamURL = strings.TrimSuffix(f.UpstreamURL, "/")
	}
	if f.MaxRetries > 0 {
		cfg.MaxRetries = f.MaxRetries
	}
	if f.RetryDelaySeconds > 0 {
		cfg.RetryDelay = time.Duration(f.RetryDelaySeconds) * time.Second
	}
	if f.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(f.RequestTimeoutSeconds) * time.Second
	}
	if f.DownloadTimeoutSeconds > 0 {
		cfg.DownloadTimeout = time.Duration(f.DownloadTimeoutSeconds) * time.Second
	}
}

// detectFormat determines the file format based on extension or content.
func detectFormat(path string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	}

	return sniffFormat(content)
}

// sniffFormat attempts to detect format from content for extensionless files.
func sniffFormat(content []byte) Format {
	trimmed := strings.TrimSpace(string(content))

	// JSON starts with { or [
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return FormatJSON
	}

	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// TOML uses key = value or [sections]; YAML uses key: value
		if strings.Contains(line, " = ") || strings.HasPrefix(line, "[") {
			return FormatTOML
		}
		if strings.Contains(line, ":") {
			return FormatYAML
		}
	}

	return FormatUnknown
}
