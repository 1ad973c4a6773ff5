package update

import (
	"fmt"
	"runtime"
)

// OS is the closed set of operating systems the installer dispatches on.
type OS string

const (
	OSWindows OS = "windows"
	OSLinux   OS = "linux"
	OSDarwin  OS = "darwin"
	OSUnknown OS = "unknown"
)

// Arch is the closed set of architectures the installer understands.
type Arch string

const (
	ArchAMD64 Arch = "amd64"
	ArchARM64 Arch = "arm64"
	ArchX86   Arch = "x86"
)

// Platform describes the current system platform.
type Platform struct {
	OS   OS
	Arch Arch
}

// Detect returns the current platform, normalized to the OS/Arch enums.
func Detect() Platform {
	return Platform{
		OS:   NormalizeOS(runtime.GOOS),
		Arch: NormalizeArch(runtime.GOARCH),
	}
}

// NormalizeOS maps an OS name to the dispatch enum. Names outside the three
// supported systems collapse to OSUnknown.
func NormalizeOS(s string) OS {
	switch s {
	case "windows":
		return OSWindows
	case "linux":
		return OSLinux
	case "darwin":
		return OSDarwin
	default:
		return OSUnknown
	}
}

// NormalizeArch maps a machine name to the installer arch vocabulary.
// Anything that is not 64-bit x86 or 64-bit ARM is treated as 32-bit x86.
func NormalizeArch(s string) Arch {
	switch s {
	case "amd64", "x86_64":
		return ArchAMD64
	case "arm64", "aarch64":
		return ArchARM64
	default:
		return ArchX86
	}
}

// IsSupported returns true if an installation strategy exists for this platform.
func (p Platform) IsSupported() bool {
	return p.OS != OSUnknown
}

func (p Platform) String() string {
	return fmt.Sprintf("%s/%s", p.OS, p.Arch)
}
