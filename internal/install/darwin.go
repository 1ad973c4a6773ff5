package install

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pyvm/pyvm/internal/update"
)

// installDarwin installs through Homebrew when available. The brew install
// exit code is authoritative; on failure or when brew is absent the user
// gets the official release page instead.
func (i *Installer) installDarwin(t Target) error {
	channel, err := update.Channel(t.Version)
	if err != nil {
		return err
	}
	formula := "python@" + channel

	if _, err := i.prober.LookPath("brew"); err != nil {
		fmt.Fprintln(i.status, "Homebrew not found.")
		fmt.Fprintln(i.status, "Option 1: install via the official installer")
		fmt.Fprintf(i.status, "  %s\n", i.releasePageURL(t.Version))
		fmt.Fprintln(i.status, "Option 2: install Homebrew first")
		fmt.Fprintln(i.status, `  /bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`)
		fmt.Fprintf(i.status, "  Then run: brew install %s\n", formula)
		return fmt.Errorf("%w: Homebrew is not installed", ErrManualInstall)
	}

	fmt.Fprintln(i.status, "Using Homebrew...")
	fmt.Fprintln(i.status, "Updating Homebrew...")
	if res := i.runner.Run("brew", "update"); res.Failed() {
		fmt.Fprintf(i.status, "warning: brew update failed: %s\n", bytes.TrimSpace(res.Output))
	}

	fmt.Fprintf(i.status, "Installing Python %s via Homebrew (formula: %s)...\n", t.Version, formula)
	res := i.runner.Run("brew", "install", formula)
	if res.Failed() {
		fmt.Fprintf(i.status, "Homebrew formula '%s' may not be available.\n", formula)
		fmt.Fprintln(i.status, "Alternative: install via the official installer from python.org")
		fmt.Fprintf(i.status, "  %s\n", i.releasePageURL(t.Version))
		if res.Err != nil {
			return fmt.Errorf("could not run brew: %w", res.Err)
		}
		return fmt.Errorf("brew install %s failed with exit code %d", formula, res.ExitCode)
	}

	fmt.Fprintf(i.status, "Python %s installed successfully via Homebrew\n", t.Version)
	fmt.Fprintf(i.status, "Note: Homebrew tracks the latest patch release of %s; the exact version may differ slightly.\n", channel)
	return nil
}

// releasePageURL builds the release page for a version, with dots replaced
// by hyphens: 3.11.5 -> .../release/python-3-11-5/.
func (i *Installer) releasePageURL(version string) string {
	return fmt.Sprintf("%s/downloads/release/python-%s/", i.siteURL, strings.ReplaceAll(version, ".", "-"))
}
