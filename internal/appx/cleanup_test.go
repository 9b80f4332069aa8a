// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"winpack-cli/internal/testutil"

	"github.com/charmbracelet/log"
)

func TestCleanup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		keepArtifact  bool
		wantOutputDir bool
	}{
		{"artifact present", true, true},
		{"nothing produced", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, root := newTestService(t, nil, &testutil.FakeRunner{})
			wc := extracted(t, root, "Contoso.App")
			if tt.keepArtifact {
				testutil.MustWriteFile(t, wc.PackagePath(), []byte("appx"))
			}

			svc.Cleanup(wc)

			if exists(wc.ContentDir) {
				t.Error("content folder not removed")
			}
			if got := exists(wc.OutputDir); got != tt.wantOutputDir {
				t.Errorf("output folder exists = %v, want %v", got, tt.wantOutputDir)
			}
		})
	}
}

func TestCleanup_LogsFailures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	svc, root := newTestService(t, nil, &testutil.FakeRunner{}, WithLogger(log.New(&buf)))
	wc := &WorkingContext{Name: "gone", OutputDir: filepath.Join(root, "gone"), ContentDir: filepath.Join(root, "gone", "gone")}

	svc.Cleanup(wc)

	if !strings.Contains(buf.String(), "error deleting output folder") {
		t.Errorf("log = %q, want an output folder deletion error", buf.String())
	}
}

func TestCleanup_NilContext(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, nil, &testutil.FakeRunner{})
	svc.Cleanup(nil)
}
