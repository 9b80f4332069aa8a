// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"winpack-cli/internal/config"
	"winpack-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got := getVersionString(); got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q", got)
		}
	})
}

func TestVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		uiVerbose bool
		want      log.Level
	}{
		{"default", []string{"config", "show"}, false, log.InfoLevel},
		{"flag", []string{"config", "show", "--verbose"}, false, log.DebugLevel},
		{"config", []string{"config", "show"}, true, log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, nil, nil, func(c *config.Config) { c.UI.Verbose = tt.uiVerbose })
			if err := f.run(tt.args...); err != nil {
				t.Fatalf("run error = %v", err)
			}
			if got := f.app.Logger().GetLevel(); got != tt.want {
				t.Errorf("log level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tagged := issue.NewErrorContext().WithOperation("load configuration").WithIssue(issue.ConfigLoadFailedId).Build()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{"config invalid", &config.InvalidConfigError{}, issue.ConfigLoadFailedId},
		{"tagged actionable", tagged, issue.ConfigLoadFailedId},
		{"untagged actionable", issue.WrapWithOperation(errors.New("boom"), "do things"), 0},
		{"plain", errors.New("boom"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := classifyError(tt.err); got != tt.want {
				t.Errorf("classifyError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHandleError_RendersCatalogEntry(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil, nil, nil)
	err := f.app.fail(errors.New("no makepri.exe here"), issue.ToolNotFoundId)

	var out bytes.Buffer
	f.app.handleError(&out, fang.Styles{}, err)

	rendered := out.String()
	if !strings.Contains(rendered, "no makepri.exe here") {
		t.Errorf("styled message missing:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Packaging") {
		t.Errorf("catalog entry missing:\n%s", rendered)
	}
}
