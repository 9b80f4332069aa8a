// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"winpack-cli/internal/testutil"

	"github.com/klauspost/compress/zip"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	svc, root := newTestService(t, nil, &testutil.FakeRunner{})
	upload := newUpload(t, "app", "Contoso.App")

	wc, err := svc.Extract(context.Background(), upload)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := WorkingContext{
		Name:       "app",
		ContentDir: filepath.Join(root, "app", "app"),
		OutputDir:  filepath.Join(root, "app"),
	}
	if *wc != want {
		t.Errorf("Extract() = %+v, want %+v", *wc, want)
	}
	for _, rel := range []string{"appxmanifest.xml", "index.html", filepath.Join("images", "logo.scale-100.png")} {
		if !exists(filepath.Join(wc.ContentDir, rel)) {
			t.Errorf("%s was not extracted", rel)
		}
	}
	if exists(upload.Path) {
		t.Error("uploaded archive still exists after extraction")
	}
}

func TestExtract_StoredNameDiffersFromOriginal(t *testing.T) {
	t.Parallel()

	svc, root := newTestService(t, nil, &testutil.FakeRunner{})

	dir := t.TempDir()
	stored := filepath.Join(dir, "3f2a9c")
	if err := os.Rename(testutil.WriteAppArchive(t, dir, "Contoso", "Contoso.App"), stored); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	wc, err := svc.Extract(context.Background(), UploadedFile{Path: stored, OriginalName: "Contoso.zip", Extension: "zip"})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if wc.OutputDir != filepath.Join(root, "3f2a9c") {
		t.Errorf("OutputDir = %q", wc.OutputDir)
	}
	if wc.Name != "Contoso" || wc.ContentDir != filepath.Join(root, "3f2a9c", "Contoso") {
		t.Errorf("Name = %q, ContentDir = %q", wc.Name, wc.ContentDir)
	}
}

func TestExtract_CorruptArchive(t *testing.T) {
	t.Parallel()

	svc, root := newTestService(t, nil, &testutil.FakeRunner{})

	path := filepath.Join(t.TempDir(), "app.zip")
	testutil.MustWriteFile(t, path, []byte("this is not a zip archive"))

	_, err := svc.Extract(context.Background(), UploadedFile{Path: path, OriginalName: "app.zip", Extension: "zip"})
	var readErr *ArchiveReadError
	if !errors.As(err, &readErr) || !errors.Is(err, ErrArchiveRead) {
		t.Fatalf("Extract() error = %v, want *ArchiveReadError", err)
	}
	if exists(filepath.Join(root, "app")) {
		t.Error("output directory created for an unreadable archive")
	}
	if !exists(path) {
		t.Error("unreadable upload was deleted")
	}
}

func TestExtract_CorruptEntry(t *testing.T) {
	t.Parallel()

	svc, root := newTestService(t, nil, &testutil.FakeRunner{})

	path := filepath.Join(t.TempDir(), "app.zip")
	testutil.WriteZip(t, path, map[string]string{
		"app/appxmanifest.xml": testutil.Manifest("Contoso.App"),
		"app/payload.bin":      strings.Repeat("resource data ", 512),
	})
	corruptEntry(t, path, "app/payload.bin")

	_, err := svc.Extract(context.Background(), UploadedFile{Path: path, OriginalName: "app.zip", Extension: "zip"})
	if !errors.Is(err, ErrArchiveRead) {
		t.Fatalf("Extract() error = %v, want ErrArchiveRead", err)
	}
	if errors.Is(err, ErrArchiveExtract) {
		t.Errorf("Extract() error = %v, a decompression failure is not an extract failure", err)
	}
	if exists(filepath.Join(root, "app")) {
		t.Error("partial extraction left behind")
	}
	if !exists(path) {
		t.Error("unreadable upload was deleted")
	}
}

// corruptEntry overwrites the start of name's compressed data with a deflate
// block header using the reserved block type.
func corruptEntry(t *testing.T, archive, name string) {
	t.Helper()

	zr, err := zip.OpenReader(archive)
	if err != nil {
		t.Fatalf("open %s: %v", archive, err)
	}
	var offset int64 = -1
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		if f.Method != zip.Deflate {
			t.Fatalf("%s is not deflated", name)
		}
		if offset, err = f.DataOffset(); err != nil {
			t.Fatalf("locate %s: %v", name, err)
		}
	}
	_ = zr.Close()
	if offset < 0 {
		t.Fatalf("%s not found in %s", name, archive)
	}

	f, err := os.OpenFile(archive, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	// BFINAL=1, BTYPE=11
	if _, err := f.WriteAt([]byte{0x07, 0xff, 0xff, 0xff}, offset); err != nil {
		t.Fatal(err)
	}
}

func TestExtract_MissingUpload(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, nil, &testutil.FakeRunner{})

	_, err := svc.Extract(context.Background(), UploadedFile{Path: filepath.Join(t.TempDir(), "gone.zip"), OriginalName: "gone.zip"})
	if !errors.Is(err, ErrArchiveRead) {
		t.Fatalf("Extract() error = %v, want ErrArchiveRead", err)
	}
}

func TestExtract_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		original string
		entries  map[string]string
	}{
		{
			name:     "no top-level folder named after the upload",
			original: "app.zip",
			entries:  map[string]string{"other/appxmanifest.xml": testutil.Manifest("Contoso.App")},
		},
		{
			name:     "reserved device name",
			original: "CON.zip",
			entries:  map[string]string{"CON/appxmanifest.xml": testutil.Manifest("Contoso.App")},
		},
		{
			name:     "name Windows cannot store",
			original: "app?.zip",
			entries:  map[string]string{"app?/appxmanifest.xml": testutil.Manifest("Contoso.App")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, root := newTestService(t, nil, &testutil.FakeRunner{})
			path := filepath.Join(t.TempDir(), "upload.zip")
			testutil.WriteZip(t, path, tt.entries)

			_, err := svc.Extract(context.Background(), UploadedFile{Path: path, OriginalName: tt.original, Extension: "zip"})
			var extractErr *ArchiveExtractError
			if !errors.As(err, &extractErr) || !errors.Is(err, ErrArchiveExtract) {
				t.Fatalf("Extract() error = %v, want *ArchiveExtractError", err)
			}
			if exists(filepath.Join(root, "upload")) {
				t.Error("partial extraction was left behind")
			}
		})
	}
}

func TestExtract_EntryEscapingOutput(t *testing.T) {
	t.Parallel()

	svc, root := newTestService(t, nil, &testutil.FakeRunner{})
	path := filepath.Join(t.TempDir(), "app.zip")
	testutil.WriteZip(t, path, map[string]string{
		"app/appxmanifest.xml": testutil.Manifest("Contoso.App"),
		"../../evil.txt":       "x",
	})

	_, err := svc.Extract(context.Background(), UploadedFile{Path: path, OriginalName: "app.zip", Extension: "zip"})
	// Depending on the zip reader the entry is refused when the archive is
	// opened or when it is extracted; either way nothing may be written.
	if !errors.Is(err, ErrArchiveExtract) && !errors.Is(err, ErrArchiveRead) {
		t.Fatalf("Extract() error = %v, want an archive error", err)
	}
	if exists(filepath.Join(filepath.Dir(root), "evil.txt")) || exists(filepath.Join(root, "evil.txt")) {
		t.Error("entry was written outside the output directory")
	}
	if exists(filepath.Join(root, "app")) {
		t.Error("partial extraction was left behind")
	}
}

func TestStripExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, ext, want string
	}{
		{"uploads/app.zip", "zip", "app"},
		{"uploads/app.zip", ".zip", "app"},
		{"uploads/app.zip", "", "app"},
		{`C:\uploads\app.zip`, "zip", "app"},
		{"uploads/app.tar.gz", "gz", "app.tar"},
		{"uploads/app", "zip", "app"},
		{"Contoso.App.zip", "zip", "Contoso.App"},
	}

	for _, tt := range tests {
		if got := stripExt(tt.path, tt.ext); got != tt.want {
			t.Errorf("stripExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}
