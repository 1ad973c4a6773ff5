// Package config holds the tunable settings for network calls and retries,
// with optional overrides from a config file.
package config

import "time"

// Config carries the process-wide settings. Components take it explicitly
// so tests can override timeouts and retry counts.
type Config struct {
	UpstreamURL     string        // Site origin of the upstream release page
	MaxRetries      int           // Attempts for the release check
	RetryDelay      time.Duration // Base delay between release check attempts
	RequestTimeout  time.Duration // Timeout for the release check request
	DownloadTimeout time.Duration // Total timeout for artifact downloads
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		UpstreamURL:     "https://www.python.org",
		MaxRetries:      3,
		RetryDelay:      2 * time.Second,
		RequestTimeout:  15 * time.Second,
		DownloadTimeout: 120 * time.Second,
	}
}
