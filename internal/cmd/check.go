package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pyvm/pyvm/internal/output"
	"github.com/pyvm/pyvm/internal/update"
)

// checkReport is what `pyvm check` renders.
type checkReport struct {
	LocalVersion  string `json:"local_version" yaml:"local_version"`
	LatestVersion string `json:"latest_version" yaml:"latest_version"`
	NeedsUpdate   bool   `json:"needs_update" yaml:"needs_update"`
}

func (r checkReport) String() string {
	divider := strings.Repeat("=", 40)
	var b strings.Builder
	fmt.Fprintln(&b, divider)
	fmt.Fprintln(&b, "     Python Version Check Report")
	fmt.Fprintln(&b, divider)
	fmt.Fprintf(&b, "Your version:   %s\n", r.LocalVersion)
	fmt.Fprintf(&b, "Latest version: %s\n", r.LatestVersion)
	fmt.Fprintln(&b, divider)
	if r.NeedsUpdate {
		fmt.Fprintf(&b, "A new version (%s) is available!\n", r.LatestVersion)
		fmt.Fprint(&b, "Tip: run 'pyvm update' to upgrade Python")
	} else {
		fmt.Fprint(&b, "You are up-to-date!")
	}
	return b.String()
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the local Python against the latest stable release",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd)
		},
	}
}

// runCheck exits 0 when up-to-date and 1 when an update is available or the
// fetch failed.
func runCheck(cmd *cobra.Command) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	local := ""
	if py, err := findPython(); err == nil {
		local = py.Version
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Checking Python version... (Current: %s)\n", orNone(local))

	checker := update.NewChecker(cfg).WithStatusWriter(cmd.ErrOrStderr())
	info, err := update.CheckForUpdate(checker, local)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "Please check your internet connection and try again.")
		return exitError{exitFailure}
	}

	report := checkReport{
		LocalVersion:  orNone(info.LocalVersion),
		LatestVersion: info.LatestVersion,
		NeedsUpdate:   info.NeedsUpdate,
	}
	if err := output.Render(cmd.OutOrStdout(), format, report); err != nil {
		return err
	}

	if info.NeedsUpdate {
		return exitError{exitFailure}
	}
	return nil
}
