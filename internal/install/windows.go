package install

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyvm/pyvm/internal/update"
)

// installWindows downloads the official installer to a temp path and runs
// it interactively. The installer's own UI drives the rest; its exit code
// is reported but does not decide success.
func (i *Installer) installWindows(t Target) error {
	v, err := update.ParseVersion(t.Version)
	if err != nil {
		return err
	}
	if strings.Count(t.Version, ".") != 2 {
		return fmt.Errorf("%w: %q: Windows installers need a major.minor.patch version", update.ErrValidation, t.Version)
	}

	arch := installerArch(t.Platform.Arch, v, i.status)
	installerURL := fmt.Sprintf("%s/ftp/python/%s/python-%s-%s.exe", i.siteURL, t.Version, t.Version, arch)
	installerPath := filepath.Join(i.tempDir, fmt.Sprintf("python-%s-installer.exe", t.Version))

	fmt.Fprintf(i.status, "Downloading from: %s\n", installerURL)
	if err := i.downloader.Download(installerURL, installerPath); err != nil {
		return err
	}
	defer i.removeTempFile(installerPath)

	fmt.Fprintln(i.status, "Starting installer...")
	fmt.Fprintln(i.status, "Please follow the installer prompts.")
	fmt.Fprintln(i.status, "Recommendation: check 'Add Python to PATH'")

	res := i.runner.RunInteractive(installerPath)
	if res.Err != nil {
		return fmt.Errorf("could not run installer: %w", res.Err)
	}
	if res.ExitCode != 0 {
		fmt.Fprintf(i.status, "warning: installer exited with code %d\n", res.ExitCode)
	}

	return nil
}

// installerArch picks the installer filename suffix. ARM64 installers only
// exist for Python 3.11 and later; older versions fall back to the amd64
// installer. Anything that is not 64-bit gets the win32 installer.
func installerArch(arch update.Arch, v *update.Version, status io.Writer) string {
	switch arch {
	case update.ArchAMD64:
		return "amd64"
	case update.ArchARM64:
		seg := v.Segments()
		if seg[0] > 3 || (seg[0] == 3 && seg[1] >= 11) {
			return "arm64"
		}
		fmt.Fprintf(status, "ARM64 installers are only available for Python 3.11+\n")
		fmt.Fprintf(status, "Falling back to the AMD64 installer for Python %s\n", v)
		return "amd64"
	default:
		return "win32"
	}
}

// removeTempFile deletes a downloaded installer. Best effort: failure to
// delete is a warning, not an error.
func (i *Installer) removeTempFile(path string) {
	err := os.Remove(path)
	switch {
	case err == nil:
		fmt.Fprintln(i.status, "Cleaned up temporary installer file")
	case os.IsNotExist(err):
	default:
		fmt.Fprintf(i.status, "warning: could not delete temporary file %s: %v\n", path, err)
	}
}
