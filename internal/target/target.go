// Package target defines the build request model: target platform,
// architecture, build profile and numeric precision, plus the canonical
// artifact naming policy derived from them.
package target

import (
	"fmt"
	"runtime"
)

// Platform is a supported target operating system.
type Platform string

const (
	Linux   Platform = "linux"
	Windows Platform = "windows"
	MacOS   Platform = "macos"
	IOS     Platform = "ios"
	Android Platform = "android"
	Web     Platform = "web"
)

// Arch is a supported target architecture.
type Arch string

const (
	X86_32 Arch = "x86_32"
	X86_64 Arch = "x86_64"
	Arm32  Arch = "arm32"
	Arm64  Arch = "arm64"
	RV64   Arch = "rv64"
	Wasm32 Arch = "wasm32"

	// Universal requests a multi-arch binary on Apple platforms.
	Universal Arch = "universal"
)

// Profile is the build profile.
type Profile string

const (
	Debug   Profile = "debug"
	Release Profile = "release"
)

// Precision is the engine float precision the plugin is built against.
type Precision string

const (
	Single Precision = "single"
	Double Precision = "double"
)

// Request describes one build invocation. It is a value type, resolved
// once from flags and configuration and never mutated afterwards.
type Request struct {
	Platform  Platform
	Arch      Arch
	Profile   Profile
	Precision Precision
	Threads   bool
}

// ParsePlatform parses a platform name.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(s); p {
	case Linux, Windows, MacOS, IOS, Android, Web:
		return p, nil
	}
	return "", fmt.Errorf("unknown platform %q (valid: linux, windows, macos, ios, android, web)", s)
}

// ParseArch parses an architecture name.
func ParseArch(s string) (Arch, error) {
	switch a := Arch(s); a {
	case X86_32, X86_64, Arm32, Arm64, RV64, Wasm32, Universal:
		return a, nil
	}
	return "", fmt.Errorf("unknown architecture %q (valid: x86_32, x86_64, arm32, arm64, rv64, wasm32, universal)", s)
}

// ParseProfile parses a build profile name.
func ParseProfile(s string) (Profile, error) {
	switch p := Profile(s); p {
	case Debug, Release:
		return p, nil
	}
	return "", fmt.Errorf("unknown profile %q (valid: debug, release)", s)
}

// ParsePrecision parses a precision name.
func ParsePrecision(s string) (Precision, error) {
	switch p := Precision(s); p {
	case Single, Double:
		return p, nil
	}
	return "", fmt.Errorf("unknown precision %q (valid: single, double)", s)
}

// HostPlatform returns the platform matching the machine running the tool.
func HostPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	default:
		return Linux
	}
}

// HostArch returns the architecture matching the machine running the tool.
func HostArch() Arch {
	switch runtime.GOARCH {
	case "386":
		return X86_32
	case "arm":
		return Arm32
	case "arm64":
		return Arm64
	case "riscv64":
		return RV64
	default:
		return X86_64
	}
}
