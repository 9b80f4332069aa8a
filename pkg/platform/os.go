// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// SDK architecture directory names under "<KitsRoot>\bin".
const (
	ArchX64   = "x64"
	ArchX86   = "x86"
	ArchARM   = "arm"
	ArchARM64 = "arm64"
)

// IsWindows reports whether the current process runs on a Windows host.
func IsWindows() bool {
	return IsWindowsOS(runtime.GOOS)
}

// IsWindowsOS reports whether goos names the Windows family.
func IsWindowsOS(goos string) bool {
	return goos == Windows
}

// SDKArch returns the Windows SDK bin directory name for the host CPU.
func SDKArch() string {
	return SDKArchFor(runtime.GOARCH)
}

// SDKArchFor maps a GOARCH value to the Windows SDK bin directory name.
// Unknown architectures map to themselves.
func SDKArchFor(goarch string) string {
	switch goarch {
	case "amd64":
		return ArchX64
	case "386":
		return ArchX86
	case "arm":
		return ArchARM
	case "arm64":
		return ArchARM64
	default:
		return goarch
	}
}
