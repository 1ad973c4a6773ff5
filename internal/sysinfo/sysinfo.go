// Package sysinfo inspects the local machine: the installed Python
// interpreter, process privileges, and host platform details.
package sysinfo

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/pyvm/pyvm/internal/update"
)

// Python describes a discovered local interpreter.
type Python struct {
	Version string // e.g. "3.11.5"
	Path    string // Resolved executable path
	Command string // The PATH name it was found under
}

// ErrPythonNotFound indicates no usable interpreter was found on PATH.
var ErrPythonNotFound = errors.New("no Python interpreter found on PATH")

var pythonVersionRegex = regexp.MustCompile(`Python (\d+(?:\.\d+)+)`)

// candidates returns the interpreter names to probe, most specific first.
// Windows installs register "python" and the "py" launcher rather than a
// "python3" name.
func candidates(osName update.OS) []string {
	if osName == update.OSWindows {
		return []string{"python", "py", "python3"}
	}
	return []string{"python3", "python"}
}

// FindPython locates the local interpreter and asks it for its version.
func FindPython() (*Python, error) {
	return findPython(update.Detect().OS, exec.LookPath, runVersionCommand)
}

func findPython(osName update.OS, look func(string) (string, error), run func(string) (string, error)) (*Python, error) {
	for _, name := range candidates(osName) {
		path, err := look(name)
		if err != nil {
			continue
		}
		out, err := run(path)
		if err != nil {
			continue
		}
		version, err := ParseVersionOutput(out)
		if err != nil {
			continue
		}
		return &Python{Version: version, Path: path, Command: name}, nil
	}
	return nil, ErrPythonNotFound
}

func runVersionCommand(path string) (string, error) {
	// Old interpreters print the version on stderr, so capture both.
	out, err := exec.Command(path, "--version").CombinedOutput()
	return string(out), err
}

// ParseVersionOutput extracts the version from `python --version` output.
func ParseVersionOutput(s string) (string, error) {
	m := pythonVersionRegex.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("unrecognized version output: %q", strings.TrimSpace(s))
	}
	return m[1], nil
}

// HostDescription returns a human-readable platform string, e.g.
// "ubuntu 24.04 (6.8.0-51-generic)". Falls back to GOOS/GOARCH when host
// details are unavailable.
func HostDescription() string {
	info, err := host.Info()
	if err != nil || info.Platform == "" {
		return runtime.GOOS + "/" + runtime.GOARCH
	}
	return fmt.Sprintf("%s %s (%s)", info.Platform, info.PlatformVersion, info.KernelVersion)
}
