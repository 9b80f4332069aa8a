// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"

	"winpack-cli/pkg/platform"
)

// HomeEnv is the variable os.UserHomeDir reads on this platform.
func HomeEnv() string {
	if runtime.GOOS == platform.Windows {
		return "USERPROFILE"
	}
	return "HOME"
}

// SetHomeDir points the user's home directory at dir until the test ends, so
// config directory lookups land in a temporary tree.
func SetHomeDir(t testing.TB, dir string) {
	t.Helper()
	t.Setenv(HomeEnv(), dir)
}
