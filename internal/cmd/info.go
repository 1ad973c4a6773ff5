package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pyvm/pyvm/internal/output"
	"github.com/pyvm/pyvm/internal/sysinfo"
	"github.com/pyvm/pyvm/internal/update"
)

// infoReport is what `pyvm info` renders.
type infoReport struct {
	OS            string `json:"os" yaml:"os"`
	Arch          string `json:"arch" yaml:"arch"`
	PythonVersion string `json:"python_version" yaml:"python_version"`
	PythonPath    string `json:"python_path" yaml:"python_path"`
	Platform      string `json:"platform" yaml:"platform"`
	Admin         bool   `json:"admin" yaml:"admin"`
}

func (r infoReport) String() string {
	divider := strings.Repeat("=", 50)
	yesNo := "No"
	if r.Admin {
		yesNo = "Yes"
	}

	var b strings.Builder
	fmt.Fprintln(&b, divider)
	fmt.Fprintln(&b, "           System Information")
	fmt.Fprintln(&b, divider)
	fmt.Fprintf(&b, "Operating System: %s\n", r.OS)
	fmt.Fprintf(&b, "Architecture:     %s\n", r.Arch)
	fmt.Fprintf(&b, "Python Version:   %s\n", r.PythonVersion)
	fmt.Fprintf(&b, "Python Path:      %s\n", r.PythonPath)
	fmt.Fprintf(&b, "Platform:         %s\n", r.Platform)
	fmt.Fprintf(&b, "Admin/Sudo:       %s\n", yesNo)
	fmt.Fprint(&b, divider)
	return b.String()
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show detected system and Python information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd)
		},
	}
}

func runInfo(cmd *cobra.Command) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	platform := update.Detect()
	report := infoReport{
		OS:       string(platform.OS),
		Arch:     string(platform.Arch),
		Platform: sysinfo.HostDescription(),
		Admin:    sysinfo.IsAdmin(),
	}

	if py, err := findPython(); err == nil {
		report.PythonVersion = py.Version
		report.PythonPath = py.Path
	} else {
		report.PythonVersion = "not found"
		report.PythonPath = "not found"
	}

	return output.Render(cmd.OutOrStdout(), format, report)
}
