// Package install selects and runs the OS-specific installation strategy.
// Installed versions sit alongside the system Python; nothing here changes
// the system default interpreter.
package install

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pyvm/pyvm/internal/update"
)

var (
	// ErrUnsupportedPlatform indicates no installation strategy exists for
	// the detected operating system.
	ErrUnsupportedPlatform = errors.New("unsupported operating system")

	// ErrManualInstall indicates the tool printed instructions but could
	// not install automatically.
	ErrManualInstall = errors.New("manual installation required")
)

// Target identifies what to install and for which platform.
type Target struct {
	Platform update.Platform
	Version  string
}

// Installer dispatches an install to one of three platform strategies.
type Installer struct {
	downloader update.Downloader
	runner     Runner
	prober     Prober
	status     io.Writer
	siteURL    string
	tempDir    string
	fileExists func(string) bool
}

// Option configures an Installer.
type Option func(*Installer)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(i *Installer) { i.runner = r }
}

// WithProber replaces the PATH prober.
func WithProber(p Prober) Option {
	return func(i *Installer) { i.prober = p }
}

// WithStatusWriter directs user-facing progress messages to w.
func WithStatusWriter(w io.Writer) Option {
	return func(i *Installer) { i.status = w }
}

// WithSiteURL overrides the upstream site origin used to build artifact URLs.
func WithSiteURL(u string) Option {
	return func(i *Installer) { i.siteURL = u }
}

// WithTempDir overrides the directory used for downloaded installers.
func WithTempDir(dir string) Option {
	return func(i *Installer) { i.tempDir = dir }
}

// WithFileExists replaces the post-install binary existence check.
func WithFileExists(fn func(string) bool) Option {
	return func(i *Installer) { i.fileExists = fn }
}

// New creates an Installer with real command execution and probing.
func New(downloader update.Downloader, opts ...Option) *Installer {
	inst := &Installer{
		downloader: downloader,
		runner:     ExecRunner{},
		prober:     ExecProber{},
		status:     os.Stdout,
		siteURL:    "https://www.python.org",
		tempDir:    os.TempDir(),
		fileExists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

// Install runs the strategy for the target's operating system. Exactly one
// branch executes per invocation.
func (i *Installer) Install(t Target) error {
	switch t.Platform.OS {
	case update.OSWindows:
		return i.installWindows(t)
	case update.OSLinux:
		return i.installLinux(t)
	case update.OSDarwin:
		return i.installDarwin(t)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, t.Platform.OS)
	}
}

// runSteps executes a command sequence, honoring each step's policy.
func (i *Installer) runSteps(steps []Step) error {
	for _, s := range steps {
		fmt.Fprintf(i.status, "Running: %s\n", s)
		res := i.runner.Run(s.Name, s.Args...)
		if !res.Failed() {
			continue
		}
		switch s.Policy {
		case PolicyWarn:
			fmt.Fprintf(i.status, "warning: command failed with exit code %d: %s\n", res.ExitCode, s)
			fmt.Fprintln(i.status, "Continuing anyway...")
		default:
			if res.Err != nil {
				return fmt.Errorf("could not run %s: %w", s.Name, res.Err)
			}
			return fmt.Errorf("command failed with exit code %d: %s", res.ExitCode, s)
		}
	}
	return nil
}
