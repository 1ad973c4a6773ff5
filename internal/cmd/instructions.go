package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/pyvm/pyvm/internal/update"
)

// printUsageInstructions tells the user how to invoke the newly installed
// interpreter. The system default is never changed, so these instructions
// are the whole handoff.
func printUsageInstructions(w io.Writer, version string, osName update.OS) {
	channel, err := update.Channel(version)
	if err != nil {
		channel = version
	}
	divider := strings.Repeat("=", 60)
	rule := strings.Repeat("-", 60)

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "Installation Complete!")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Python %s has been installed successfully!\n", version)
	fmt.Fprintln(w, "How to use your new Python version:")
	fmt.Fprintln(w, rule)

	switch osName {
	case update.OSLinux, update.OSDarwin:
		fmt.Fprintln(w, "1. Run scripts with the new version:")
		fmt.Fprintf(w, "     python%s your_script.py\n", channel)
		fmt.Fprintln(w, "2. Create a virtual environment:")
		fmt.Fprintf(w, "     python%s -m venv myproject\n", channel)
		fmt.Fprintln(w, "     source myproject/bin/activate")
		fmt.Fprintf(w, "     python --version  # Will show %s\n", version)
		fmt.Fprintln(w, "3. Check it's installed:")
		fmt.Fprintf(w, "     python%s --version\n", channel)
	case update.OSWindows:
		fmt.Fprintln(w, "1. Use the Python Launcher:")
		fmt.Fprintf(w, "     py -%s your_script.py\n", channel)
		fmt.Fprintln(w, "2. List all Python versions:")
		fmt.Fprintln(w, "     py --list")
		fmt.Fprintln(w, "3. Create a virtual environment:")
		fmt.Fprintf(w, "     py -%s -m venv myproject\n", channel)
		fmt.Fprintln(w, "     myproject\\Scripts\\activate")
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Important: your old Python version remains the system default.")
	fmt.Fprintln(w, "Use the version-specific command when you need the new Python.")
	fmt.Fprintln(w, "Note: restart your terminal to ensure PATH is updated.")
}
