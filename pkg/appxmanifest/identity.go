// SPDX-License-Identifier: MPL-2.0

// Package appxmanifest extracts the package identity from an app manifest
// (appxmanifest.xml).
//
// The manifest is treated as opaque text: the first <Identity> element is
// located by pattern, then its Name attribute. No schema validation is done.
// See https://learn.microsoft.com/uwp/schemas/appxpackage/uapmanifestschema/element-identity
package appxmanifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// FileName is the manifest file name inside a package content directory.
const FileName = "appxmanifest.xml"

var (
	identityElement = regexp.MustCompile(`<Identity\s+[^>]+>`)

	// 3 to 50 alphanumeric, period and dash characters.
	nameAttribute = regexp.MustCompile(`\bName="([A-Za-z0-9.\-]{3,50})"`)
)

// ParseIdentity returns the Name attribute of the first Identity element in
// manifest, or "" when there is none.
func ParseIdentity(manifest []byte) string {
	element := identityElement.Find(manifest)
	if element == nil {
		return ""
	}
	m := nameAttribute.FindSubmatch(element)
	if m == nil {
		return ""
	}
	return string(m[1])
}

// ReadIdentity reads <contentDir>/appxmanifest.xml and returns its package
// identity name, or "" when the manifest carries none.
func ReadIdentity(contentDir string) (string, error) {
	return ReadIdentityFile(filepath.Join(contentDir, FileName))
}

// ReadIdentityFile is ReadIdentity for an explicit manifest path.
func ReadIdentityFile(manifestPath string) (string, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return "", fmt.Errorf("read manifest: %w", err)
	}
	return ParseIdentity(data), nil
}
