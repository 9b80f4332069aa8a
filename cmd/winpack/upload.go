// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"winpack-cli/internal/appx"
)

// stageUpload copies archive into a fresh temporary directory, the way an
// upload lands in the upload folder. Extraction deletes the staged copy, so
// the user's file is never consumed. The returned cleanup removes the
// temporary directory.
//
// name, when set, replaces the archive base name as the package name.
func stageUpload(archive, name string) (appx.UploadedFile, func(), error) {
	base := filepath.Base(archive)
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if ext == "" {
		return appx.UploadedFile{}, nil, fmt.Errorf("archive %s has no file extension", archive)
	}

	src, err := os.Open(archive)
	if err != nil {
		return appx.UploadedFile{}, nil, &appx.ArchiveReadError{Archive: archive, Cause: err}
	}
	defer src.Close()

	if info, statErr := src.Stat(); statErr == nil && info.IsDir() {
		return appx.UploadedFile{}, nil, fmt.Errorf("archive %s is a directory", archive)
	}

	dir, err := os.MkdirTemp("", "winpack-upload-")
	if err != nil {
		return appx.UploadedFile{}, nil, fmt.Errorf("create upload folder: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	staged := filepath.Join(dir, base)
	if err := copyFile(staged, src); err != nil {
		cleanup()
		return appx.UploadedFile{}, nil, fmt.Errorf("stage %s: %w", archive, err)
	}

	original := base
	if name != "" {
		original = name + "." + ext
	}
	return appx.UploadedFile{Path: staged, OriginalName: original, Extension: ext}, cleanup, nil
}

func copyFile(dst string, src io.Reader) (err error) {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(out, src)
	return err
}
