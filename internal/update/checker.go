package update

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pyvm/pyvm/internal/config"
)

// ErrFetchFailed indicates the upstream release check failed after all
// retry attempts.
var ErrFetchFailed = errors.New("could not fetch latest release")

// Checker fetches the latest stable Python release from python.org.
type Checker struct {
	client     *http.Client
	siteURL    string // Site origin, overridable for testing
	maxRetries int
	retryDelay time.Duration
	status     io.Writer
}

// NewChecker creates a checker using the configured upstream and timeouts.
func NewChecker(cfg *config.Config) *Checker {
	return &Checker{
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		siteURL:    strings.TrimSuffix(cfg.UpstreamURL, "/"),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		status:     io.Discard,
	}
}

// WithStatusWriter directs retry progress messages to w.
func (c *Checker) WithStatusWriter(w io.Writer) *Checker {
	c.status = w
	return c
}

// CheckLatest fetches the latest stable version and its download URL.
// The whole fetch is retried up to the configured attempt count with
// linear backoff; validation failures count as failed attempts.
func (c *Checker) CheckLatest() (string, string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		version, downloadURL, err := c.fetchOnce()
		if err == nil {
			return version, downloadURL, nil
		}
		lastErr = err
		if attempt < c.maxRetries {
			fmt.Fprintf(c.status, "Attempt %d failed, retrying...\n", attempt)
			time.Sleep(c.retryDelay * time.Duration(attempt))
		}
	}
	return "", "", fmt.Errorf("%w after %d attempts: %v", ErrFetchFailed, c.maxRetries, lastErr)
}

// fetchOnce performs a single fetch of the downloads page.
func (c *Checker) fetchOnce() (string, string, error) {
	resp, err := c.client.Get(c.siteURL + "/downloads/")
	if err != nil {
		return "", "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("server returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("could not parse downloads page: %w", err)
	}

	button := doc.Find("a.button").First()
	if button.Length() == 0 {
		return "", "", errors.New("download button not found on downloads page")
	}

	// The button text is "Download Python X.Y.Z"; the version is the last
	// whitespace-delimited token.
	fields := strings.Fields(button.Text())
	if len(fields) == 0 {
		return "", "", errors.New("download button has no text")
	}
	version := fields[len(fields)-1]
	if !ValidateVersionString(version) {
		return "", "", fmt.Errorf("%w: %q from downloads page", ErrValidation, version)
	}

	href, _ := button.Attr("href")
	return version, c.resolveURL(href), nil
}

// resolveURL prefixes the site origin onto scheme-less hrefs. Absolute URLs
// pass through unchanged.
func (c *Checker) resolveURL(href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	return c.siteURL + href
}

// CheckForUpdate fetches the latest release from src and compares it
// against the local version. An empty local version means no Python was
// found and always needs an update.
func CheckForUpdate(src LatestSource, localVersion string) (*Info, error) {
	latest, downloadURL, err := src.CheckLatest()
	if err != nil {
		return nil, err
	}

	info := &Info{
		LocalVersion:  localVersion,
		LatestVersion: latest,
		DownloadURL:   downloadURL,
	}

	if localVersion == "" {
		info.NeedsUpdate = true
		return info, nil
	}

	cmp, err := CompareVersions(localVersion, latest)
	if err != nil {
		return nil, err
	}
	info.NeedsUpdate = cmp < 0

	return info, nil
}
