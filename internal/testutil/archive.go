// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/klauspost/compress/zip"
)

// WriteZip writes a zip archive at path holding entries (slash-separated name
// to content). Names ending in "/" become directory entries.
func WriteZip(t testing.TB, path string, entries map[string]string) {
	t.Helper()

	MustMkdirAll(t, filepath.Dir(path), 0o755)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	zw := zip.NewWriter(f)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
		if _, err := w.Write([]byte(entries[name])); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to finish %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close %s: %v", path, err)
	}
}

// Manifest returns a minimal appxmanifest.xml declaring identity.
func Manifest(identity string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<Package xmlns="http://schemas.microsoft.com/appx/manifest/foundation/windows10">
  <Identity Name=%q Publisher="CN=Contoso" Version="1.0.0.0" />
  <Properties>
    <DisplayName>%s</DisplayName>
  </Properties>
</Package>
`, identity, identity)
}

// WriteAppArchive writes <dir>/<folder>.zip holding a <folder>/ tree with an
// app manifest for identity and a couple of assets. It returns the archive path.
func WriteAppArchive(t testing.TB, dir, folder, identity string) string {
	t.Helper()

	path := filepath.Join(dir, folder+".zip")
	WriteZip(t, path, map[string]string{
		folder + "/":                          "",
		folder + "/appxmanifest.xml":          Manifest(identity),
		folder + "/index.html":                "<html></html>",
		folder + "/images/logo.scale-100.png": "png",
	})
	return path
}
