// Package update knows how to find the latest stable Python release,
// compare it against the local one, and download release artifacts.
package update

// Info describes the result of an update check.
type Info struct {
	NeedsUpdate   bool   `json:"needs_update" yaml:"needs_update"`     // Whether a newer release exists
	LocalVersion  string `json:"local_version" yaml:"local_version"`   // Locally installed Python, empty if none found
	LatestVersion string `json:"latest_version" yaml:"latest_version"` // Latest stable release on python.org
	DownloadURL   string `json:"download_url" yaml:"download_url"`     // Download link advertised for the latest release
}

// LatestSource fetches the latest stable release and its download link.
type LatestSource interface {
	CheckLatest() (version string, downloadURL string, err error)
}

// Downloader streams a release artifact to a local path.
type Downloader interface {
	Download(url string, dst string) error
}
