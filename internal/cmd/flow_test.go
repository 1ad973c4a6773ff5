package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/pyvm/pyvm/internal/sysinfo"
)

// downloadsHandler serves a minimal downloads page advertising version as
// the latest stable release.
func downloadsHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body><a class="button" href="/ftp/python/%[1]s/python-%[1]s-amd64.exe">Download Python %[1]s</a></body></html>`, version)
	}
}

// stubUpstream points the loaded config at a test server via a config file
// and restores the global flags on cleanup.
func stubUpstream(t *testing.T, handler http.Handler) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "pyvm.toml")
	conf := fmt.Sprintf("upstream_url = %q\nmax_retries = 1\n", srv.URL)
	if err := os.WriteFile(path, []byte(conf), 0o644); err != nil {
		t.Fatal(err)
	}

	origPath, origFormat := configPath, outputFormat
	configPath, outputFormat = path, "text"
	t.Cleanup(func() { configPath, outputFormat = origPath, origFormat })
}

func stubPython(t *testing.T, version string) {
	t.Helper()
	orig := findPython
	findPython = func() (*sysinfo.Python, error) {
		if version == "" {
			return nil, sysinfo.ErrPythonNotFound
		}
		return &sysinfo.Python{Version: version, Path: "/usr/bin/python3", Command: "python3"}, nil
	}
	t.Cleanup(func() { findPython = orig })
}

func stubTerminal(t *testing.T, attached bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func() bool { return attached }
	t.Cleanup(func() { isTerminal = orig })
}

func resetUpdateFlags(t *testing.T) {
	t.Helper()
	origAuto, origTarget := autoConfirm, targetVersion
	autoConfirm, targetVersion = false, ""
	t.Cleanup(func() { autoConfirm, targetVersion = origAuto, origTarget })
}

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

// exitCodeOf maps a command error the way Execute does.
func exitCodeOf(err error) int {
	if err == nil {
		return exitOK
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}

func TestRunCheckExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		local    string
		latest   string
		wantCode int
		wantOut  string
	}{
		{
			name:     "older local exits 1",
			local:    "3.9.0",
			latest:   "3.12.1",
			wantCode: exitFailure,
			wantOut:  "A new version (3.12.1) is available!",
		},
		{
			name:     "current local exits 0",
			local:    "3.12.1",
			latest:   "3.12.1",
			wantCode: exitOK,
			wantOut:  "You are up-to-date!",
		},
		{
			name:     "newer local exits 0",
			local:    "3.13.0",
			latest:   "3.12.1",
			wantCode: exitOK,
			wantOut:  "You are up-to-date!",
		},
		{
			name:     "missing local python exits 1",
			local:    "",
			latest:   "3.12.1",
			wantCode: exitFailure,
			wantOut:  "Your version:   none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubUpstream(t, downloadsHandler(tt.latest))
			stubPython(t, tt.local)

			cmd, out, _ := newTestCmd()
			if got := exitCodeOf(runCheck(cmd)); got != tt.wantCode {
				t.Errorf("runCheck() exit code = %d, want %d", got, tt.wantCode)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("runCheck() output missing %q:\n%s", tt.wantOut, out.String())
			}
		})
	}
}

func TestRunCheckFetchFailureExitsOne(t *testing.T) {
	stubUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	stubPython(t, "3.9.0")

	cmd, _, errOut := newTestCmd()
	if got := exitCodeOf(runCheck(cmd)); got != exitFailure {
		t.Errorf("runCheck() exit code = %d, want %d", got, exitFailure)
	}
	if !strings.Contains(errOut.String(), "check your internet connection") {
		t.Errorf("runCheck() stderr missing connectivity hint:\n%s", errOut.String())
	}
}

func TestRunUpdateNoOpWhenCurrent(t *testing.T) {
	stubUpstream(t, downloadsHandler("3.12.1"))
	stubPython(t, "3.12.1")
	resetUpdateFlags(t)

	cmd, out, _ := newTestCmd()
	if err := runUpdate(cmd, nil); err != nil {
		t.Fatalf("runUpdate() error = %v", err)
	}
	if !strings.Contains(out.String(), "You already have the latest version!") {
		t.Errorf("runUpdate() output missing no-op notice:\n%s", out.String())
	}
}

func TestRunUpdateRefusesWithoutTerminal(t *testing.T) {
	stubUpstream(t, downloadsHandler("3.12.1"))
	stubPython(t, "3.9.0")
	stubTerminal(t, false)
	resetUpdateFlags(t)

	cmd, _, _ := newTestCmd()
	err := runUpdate(cmd, nil)
	if err == nil || !strings.Contains(err.Error(), "without a terminal") {
		t.Fatalf("runUpdate() error = %v, want refusal to prompt", err)
	}
}

func TestRunUpdateDeclined(t *testing.T) {
	stubUpstream(t, downloadsHandler("3.12.1"))
	stubPython(t, "3.9.0")
	stubTerminal(t, true)
	resetUpdateFlags(t)

	cmd, out, _ := newTestCmd()
	cmd.SetIn(strings.NewReader("n\n"))
	if err := runUpdate(cmd, nil); err != nil {
		t.Fatalf("runUpdate() error = %v", err)
	}
	if !strings.Contains(out.String(), "Installation cancelled.") {
		t.Errorf("runUpdate() output missing cancellation notice:\n%s", out.String())
	}
}

func TestRunUpdateVersionFlagValidation(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		wantInvalid bool
	}{
		{name: "two components rejected", version: "3.11", wantInvalid: true},
		{name: "single component rejected", version: "3", wantInvalid: true},
		{name: "non-numeric rejected", version: "three.eleven.five", wantInvalid: true},
		{name: "three components accepted", version: "3.11.5"},
		{name: "four components accepted", version: "3.11.5.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubPython(t, "3.9.0")
			stubTerminal(t, false)
			resetUpdateFlags(t)
			targetVersion = tt.version

			cmd, _, _ := newTestCmd()
			err := runUpdate(cmd, nil)
			if err == nil {
				t.Fatal("runUpdate() should not reach the installer here")
			}
			if got := strings.Contains(err.Error(), "invalid version format"); got != tt.wantInvalid {
				t.Errorf("runUpdate(--version %s) error = %v, wantInvalid %v", tt.version, err, tt.wantInvalid)
			}
			// Accepted versions stop at the terminal check instead.
			if !tt.wantInvalid && !strings.Contains(err.Error(), "without a terminal") {
				t.Errorf("runUpdate(--version %s) error = %v, want refusal to prompt", tt.version, err)
			}
		})
	}
}
