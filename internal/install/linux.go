package install

import (
	"fmt"

	"github.com/pyvm/pyvm/internal/update"
)

// installLinux installs through the distribution package manager. Only apt
// gets an automatic sequence; dnf and yum users are pointed at the manual
// command, and everything else gets a pyenv recommendation.
func (i *Installer) installLinux(t Target) error {
	channel, err := update.Channel(t.Version)
	if err != nil {
		return err
	}

	if _, err := i.prober.LookPath("apt"); err == nil {
		return i.installApt(channel)
	}

	for _, mgr := range []string{"dnf", "yum"} {
		if _, err := i.prober.LookPath(mgr); err != nil {
			continue
		}
		fmt.Fprintf(i.status, "Using %s package manager...\n", mgr)
		fmt.Fprintln(i.status, "This requires sudo privileges.")
		fmt.Fprintln(i.status, "Please run manually:")
		fmt.Fprintf(i.status, "  sudo %s install python3\n", mgr)
		fmt.Fprintf(i.status, "Note: version %s may not be available via %s.\n", t.Version, mgr)
		fmt.Fprintln(i.status, "Consider using pyenv for version-specific installations.")
		return fmt.Errorf("%w: %s does not support versioned installs here", ErrManualInstall, mgr)
	}

	fmt.Fprintln(i.status, "No supported package manager found (apt, dnf, or yum).")
	fmt.Fprintln(i.status, "Recommended: install pyenv for easy Python version management")
	fmt.Fprintln(i.status, "Visit: https://github.com/pyenv/pyenv#installation")
	fmt.Fprintln(i.status, "Quick install:")
	fmt.Fprintln(i.status, "  curl https://pyenv.run | bash")
	fmt.Fprintf(i.status, "  pyenv install %s\n", t.Version)
	return fmt.Errorf("%w: no supported package manager found", ErrManualInstall)
}

// installApt runs the deadsnakes PPA sequence. Every step continues on
// failure; the existence of the installed binary is what decides success.
func (i *Installer) installApt(channel string) error {
	fmt.Fprintln(i.status, "Using apt package manager...")
	fmt.Fprintln(i.status, "This requires sudo privileges and adds the deadsnakes PPA (third-party repository).")
	fmt.Fprintln(i.status, "IMPORTANT: this will NOT modify your system's default Python.")

	steps := []Step{
		{Name: "sudo", Args: []string{"apt", "update"}, Policy: PolicyWarn},
		{Name: "sudo", Args: []string{"apt", "install", "-y", "software-properties-common"}, Policy: PolicyWarn},
		{Name: "sudo", Args: []string{"add-apt-repository", "-y", "ppa:deadsnakes/ppa"}, Policy: PolicyWarn},
		{Name: "sudo", Args: []string{"apt", "update"}, Policy: PolicyWarn},
		{Name: "sudo", Args: []string{"apt", "install", "-y", "python" + channel}, Policy: PolicyWarn},
		{Name: "sudo", Args: []string{"apt", "install", "-y", "python" + channel + "-venv", "python" + channel + "-distutils"}, Policy: PolicyWarn},
	}
	if err := i.runSteps(steps); err != nil {
		return err
	}

	binary := "/usr/bin/python" + channel
	if !i.fileExists(binary) {
		fmt.Fprintf(i.status, "warning: %s not found after installation\n", binary)
		return fmt.Errorf("%s not found after installation", binary)
	}

	fmt.Fprintf(i.status, "Python %s installed successfully at %s\n", channel, binary)
	fmt.Fprintf(i.status, "Your system Python remains unchanged. Use 'python%s' to access the new version.\n", channel)
	return nil
}
