package install

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands. It is an interface so installation
// sequences can be exercised with a fake in tests.
type Runner interface {
	// Run executes the command and captures its combined output.
	Run(name string, args ...string) Result
	// RunInteractive executes the command attached to the parent's
	// terminal, for installers that drive their own UI.
	RunInteractive(name string, args ...string) Result
}

// Result captures a finished command.
type Result struct {
	ExitCode int    // Exit code, -1 if the command could not start
	Output   []byte // Combined stdout/stderr, empty for interactive runs
	Err      error  // Non-exit error (e.g. executable not found)
}

// Failed reports whether the command could not run or exited non-zero.
func (r Result) Failed() bool {
	return r.Err != nil || r.ExitCode != 0
}

// Policy decides what a failed step means for the rest of a sequence.
type Policy int

const (
	PolicyAbort         Policy = iota // Stop the sequence and fail
	PolicyWarn                        // Report and continue
	PolicyAuthoritative               // The step's exit code decides overall success
)

// Step is one external command in an installation sequence, with an
// explicit failure policy.
type Step struct {
	Name   string
	Args   []string
	Policy Policy
}

func (s Step) String() string {
	return s.Name + " " + strings.Join(s.Args, " ")
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) Result {
	out, err := exec.Command(name, args...).CombinedOutput()
	return newResult(out, err)
}

func (ExecRunner) RunInteractive(name string, args ...string) Result {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return newResult(nil, cmd.Run())
}

func newResult(out []byte, err error) Result {
	res := Result{Output: out}
	if err == nil {
		return res
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res
	}
	res.ExitCode = -1
	res.Err = err
	return res
}

// Prober reports whether an executable is available on PATH.
type Prober interface {
	LookPath(name string) (string, error)
}

// ExecProber probes PATH with exec.LookPath.
type ExecProber struct{}

func (ExecProber) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
