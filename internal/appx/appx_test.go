// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"winpack-cli/internal/testutil"
	"winpack-cli/internal/toolexec"
	"winpack-cli/pkg/platform"

	"github.com/charmbracelet/log"
)

const sdkDir = "sdk"

// newTestService returns a Windows-host Service writing under a temporary
// output root, together with that root.
func newTestService(t *testing.T, locator ToolLocator, runner toolexec.Runner, opts ...Option) (*Service, string) {
	t.Helper()

	root := filepath.Join(t.TempDir(), "output")
	if locator == nil {
		locator = &testutil.FakeLocator{Dir: sdkDir}
	}
	base := []Option{WithOutputRoot(root), WithLogger(log.New(io.Discard)), WithHostOS(platform.Windows)}
	return NewService(locator, runner, append(base, opts...)...), root
}

// newUpload writes <tmp>/<name>.zip with a <name>/ content folder.
func newUpload(t *testing.T, name, identity string) UploadedFile {
	t.Helper()

	path := testutil.WriteAppArchive(t, t.TempDir(), name, identity)
	return UploadedFile{Path: path, OriginalName: name + ".zip", Extension: "zip"}
}

// argAfter returns the argument following flag, or "".
func argAfter(args []string, flag string) string {
	i := slices.Index(args, flag)
	if i < 0 || i+1 >= len(args) {
		return ""
	}
	return args[i+1]
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
