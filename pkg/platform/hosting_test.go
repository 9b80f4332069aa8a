// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"path/filepath"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestDetectHostingFrom(t *testing.T) {
	t.Parallel()

	if got := DetectHostingFrom(envMap(nil)); got != HostingNone {
		t.Errorf("DetectHostingFrom(empty) = %q, want none", got)
	}

	env := envMap(map[string]string{AppServiceMarkerEnv: "contoso-packager"})
	if got := DetectHostingFrom(env); got != HostingAppService {
		t.Errorf("DetectHostingFrom(app service) = %q, want %q", got, HostingAppService)
	}
}

func TestAppRoot(t *testing.T) {
	t.Parallel()

	installDir := filepath.Join("opt", "winpack")

	t.Run("plain install", func(t *testing.T) {
		t.Parallel()

		got := AppRoot(envMap(map[string]string{AppServiceHomeEnv: "ignored"}), installDir)
		if got != installDir {
			t.Errorf("AppRoot() = %q, want %q", got, installDir)
		}
	})

	t.Run("app service", func(t *testing.T) {
		t.Parallel()

		env := envMap(map[string]string{
			AppServiceMarkerEnv: "site",
			AppServiceHomeEnv:   filepath.Join("d", "home"),
		})
		want := filepath.Join("d", "home", "site", "wwwroot")
		if got := AppRoot(env, installDir); got != want {
			t.Errorf("AppRoot() = %q, want %q", got, want)
		}
	})
}
