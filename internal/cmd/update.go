package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pyvm/pyvm/internal/install"
	"github.com/pyvm/pyvm/internal/interactive"
	"github.com/pyvm/pyvm/internal/update"
)

var (
	autoConfirm   bool
	targetVersion string
)

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Download and install a Python version side-by-side",
		Long: `Download and install Python without modifying the system default.

By default the latest stable release is installed. Use --version to pick a
specific release instead.`,
		RunE: runUpdate,
	}

	cmd.Flags().BoolVar(&autoConfirm, "auto", false, "Proceed without confirmation")
	cmd.Flags().StringVar(&targetVersion, "version", "", "Target Python version (e.g. 3.11.5)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	local := ""
	if py, err := findPython(); err == nil {
		local = py.Version
	}

	installVersion := targetVersion
	if installVersion != "" {
		// At least major.minor.patch; extra components like 3.11.5.1 pass.
		if !update.ValidateVersionString(installVersion) || strings.Count(installVersion, ".") < 2 {
			return fmt.Errorf("invalid version format %q: version must be at least X.Y.Z (e.g. 3.11.5)", installVersion)
		}
		fmt.Fprintf(out, "Target version specified: %s\n", installVersion)
		fmt.Fprintf(out, "Current version: %s\n", orNone(local))
	} else {
		fmt.Fprintln(out, "Checking for updates...")
		checker := update.NewChecker(cfg).WithStatusWriter(cmd.ErrOrStderr())
		info, err := update.CheckForUpdate(checker, local)
		if err != nil {
			return fmt.Errorf("could not fetch latest version information: %w", err)
		}

		fmt.Fprintf(out, "Current version: %s\n", orNone(local))
		fmt.Fprintf(out, "Latest version:  %s\n", info.LatestVersion)
		if !info.NeedsUpdate {
			fmt.Fprintln(out, "You already have the latest version!")
			return nil
		}
		fmt.Fprintf(out, "Update available: %s -> %s\n", orNone(local), info.LatestVersion)
		installVersion = info.LatestVersion
	}

	if !autoConfirm {
		if !isTerminal() {
			return fmt.Errorf("cannot prompt for confirmation without a terminal; use --auto")
		}
		prompter := interactive.NewPrompterWithIO(cmd.InOrStdin(), out)
		if !prompter.Confirm("Do you want to proceed with installing Python %s?", installVersion) {
			fmt.Fprintln(out, "Installation cancelled.")
			return nil
		}
	}

	platform := update.Detect()
	fmt.Fprintf(out, "Detected: %s\n", platform)

	downloader := update.NewHTTPDownloader(cfg.DownloadTimeout).WithProgressWriter(cmd.ErrOrStderr())
	installer := install.New(downloader,
		install.WithStatusWriter(out),
		install.WithSiteURL(cfg.UpstreamURL),
	)

	target := install.Target{Platform: platform, Version: installVersion}
	if err := installer.Install(target); err != nil {
		fmt.Fprintln(out, "Installation process encountered issues. Please check the messages above.")
		return err
	}

	printUsageInstructions(out, installVersion, platform.OS)
	return nil
}
