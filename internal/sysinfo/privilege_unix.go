//go:build !windows

package sysinfo

import "os"

// IsAdmin reports whether the process is running as root.
func IsAdmin() bool {
	return os.Geteuid() == 0
}
