package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pyvm/pyvm/internal/update"
)

func TestPrintUsageInstructionsUnix(t *testing.T) {
	var buf bytes.Buffer
	printUsageInstructions(&buf, "3.11.5", update.OSLinux)
	out := buf.String()

	if !strings.Contains(out, "python3.11 your_script.py") {
		t.Errorf("missing channel-qualified command:\n%s", out)
	}
	if !strings.Contains(out, "python3.11 -m venv myproject") {
		t.Errorf("missing venv instructions:\n%s", out)
	}
	if !strings.Contains(out, "remains the system default") {
		t.Errorf("missing system-default note:\n%s", out)
	}
}

func TestPrintUsageInstructionsWindows(t *testing.T) {
	var buf bytes.Buffer
	printUsageInstructions(&buf, "3.11.5", update.OSWindows)
	out := buf.String()

	if !strings.Contains(out, "py -3.11 your_script.py") {
		t.Errorf("missing launcher command:\n%s", out)
	}
	if !strings.Contains(out, "py --list") {
		t.Errorf("missing launcher list command:\n%s", out)
	}
}
