// Package cmd implements the pyvm command-line interface. It is the only
// place that maps failures to process exit codes.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pyvm/pyvm/internal/config"
	"github.com/pyvm/pyvm/internal/interactive"
	"github.com/pyvm/pyvm/internal/sysinfo"
)

// Indirected for tests.
var (
	findPython = sysinfo.FindPython
	isTerminal = interactive.IsTerminal
)

// Exit codes: 0 success/up-to-date, 1 failure or update available,
// 130 interrupted.
const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

var (
	// Global flags
	outputFormat string
	configPath   string
)

// exitError carries a specific exit code out of a command without an error
// message of its own.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// Execute runs the CLI and returns the process exit code.
func Execute(version, commit, date string) int {
	// Single top-level interrupt handler; everything below blocks
	// synchronously, so an interrupt always maps to 130.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Fprintln(os.Stderr, "\nOperation cancelled by user.")
		os.Exit(exitInterrupted)
	}()

	rootCmd := &cobra.Command{
		Use:   "pyvm",
		Short: "Check and install Python without touching the system default",
		Long: `pyvm compares the local Python against the latest stable release on
python.org and can install a newer version side-by-side.

The system default Python is never modified; existing tools and scripts
keep working.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation behaves like `pyvm check`.
			return runCheck(cmd)
		},
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("pyvm version %s (commit %s, built %s)\n", version, commit, date))
	// Declared here so --version gets the -v shorthand.
	rootCmd.Flags().BoolP("version", "v", false, "Show tool version")

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a pyvm config file")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newInfoCmd())

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	if err := rootCmd.Execute(); err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitFailure
	}
	return exitOK
}

// loadConfig resolves the effective configuration for this invocation.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// orNone substitutes a placeholder for an empty version string.
func orNone(version string) string {
	if version == "" {
		return "none"
	}
	return version
}
