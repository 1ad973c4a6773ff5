package update

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb"
)

// ErrInvalidScheme indicates a download URL that is not http or https.
var ErrInvalidScheme = errors.New("unsupported URL scheme")

const downloadChunkSize = 8 * 1024

// HTTPDownloader streams release artifacts to disk.
type HTTPDownloader struct {
	client   *http.Client
	progress io.Writer
}

// NewHTTPDownloader creates a downloader with the given total timeout.
func NewHTTPDownloader(timeout time.Duration) *HTTPDownloader {
	return &HTTPDownloader{
		client: &http.Client{
			Timeout: timeout,
		},
		progress: os.Stderr,
	}
}

// WithProgressWriter directs progress reporting to w. Progress is a side
// channel only and never affects the success of a download.
func (d *HTTPDownloader) WithProgressWriter(w io.Writer) *HTTPDownloader {
	d.progress = w
	return d
}

// Download streams the artifact at url to dst in fixed-size chunks.
// The URL scheme is checked before any request is made.
func (d *HTTPDownloader) Download(url string, dst string) error {
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
		return fmt.Errorf("%w: %s", ErrInvalidScheme, url)
	}

	resp, err := d.client.Get(url)
	if err != nil {
		return fmt.Errorf("download request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: server returned %s", resp.Status)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("cannot write to %s: %w", dst, err)
	}

	total := resp.ContentLength
	var reader io.Reader = resp.Body
	var bar *pb.ProgressBar
	if total > 0 {
		bar = pb.New64(total).SetUnits(pb.U_BYTES)
		bar.Output = d.progress
		bar.Start()
		reader = bar.NewProxyReader(resp.Body)
	}

	written, copyErr := io.CopyBuffer(out, reader, make([]byte, downloadChunkSize))
	if bar != nil {
		bar.Finish()
	} else {
		fmt.Fprintf(d.progress, "downloaded %d bytes\n", written)
	}

	closeErr := out.Close()
	if copyErr != nil {
		return fmt.Errorf("download interrupted: %w", copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("cannot write to %s: %w", dst, closeErr)
	}

	return verifySize(dst, total, d.progress)
}

// verifySize checks the downloaded file against the advertised size. A size
// mismatch is a warning, not a failure; a missing file is a failure.
func verifySize(dst string, expected int64, progress io.Writer) error {
	fi, err := os.Stat(dst)
	if err != nil {
		return fmt.Errorf("downloaded file not found: %w", err)
	}
	if expected > 0 && fi.Size() != expected {
		fmt.Fprintf(progress, "warning: downloaded size (%d) does not match expected size (%d)\n", fi.Size(), expected)
	}
	return nil
}
