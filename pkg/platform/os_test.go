// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestSDKArchFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goarch string
		want   string
	}{
		{"amd64", ArchX64},
		{"386", ArchX86},
		{"arm", ArchARM},
		{"arm64", ArchARM64},
		{"riscv64", "riscv64"},
	}

	for _, tt := range tests {
		t.Run(tt.goarch, func(t *testing.T) {
			t.Parallel()

			if got := SDKArchFor(tt.goarch); got != tt.want {
				t.Errorf("SDKArchFor(%q) = %q, want %q", tt.goarch, got, tt.want)
			}
		})
	}
}

func TestIsWindowsOS(t *testing.T) {
	t.Parallel()

	if !IsWindowsOS(Windows) {
		t.Error("IsWindowsOS(windows) = false, want true")
	}
	for _, goos := range []string{Linux, Darwin, "freebsd", ""} {
		if IsWindowsOS(goos) {
			t.Errorf("IsWindowsOS(%q) = true, want false", goos)
		}
	}
}
