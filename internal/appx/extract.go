// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"winpack-cli/pkg/platform"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/zip"
)

// Extract unpacks upload into a fresh output directory and returns the
// WorkingContext of the run. The uploaded file is deleted on success.
//
// On failure Extract removes the directories it created, so there is nothing
// for Cleanup to do.
func (s *Service) Extract(ctx context.Context, upload UploadedFile) (*WorkingContext, error) {
	return s.extract(ctx, s.logger, upload)
}

func (s *Service) extract(ctx context.Context, logger *log.Logger, upload UploadedFile) (wc *WorkingContext, err error) {
	outputDir := filepath.Join(s.outputRoot, stripExt(upload.Path, upload.Extension))
	name := stripExt(upload.OriginalName, upload.Extension)
	if err := validateName(name); err != nil {
		return nil, &ArchiveExtractError{Archive: upload.OriginalName, Cause: err}
	}

	zr, err := zip.OpenReader(upload.Path)
	if err != nil {
		logger.Error("cannot open uploaded archive", "path", upload.Path, "error", err)
		return nil, &ArchiveReadError{Archive: upload.OriginalName, Cause: err}
	}

	created, err := ensureDir(outputDir)
	if err != nil {
		_ = zr.Close()
		return nil, &ArchiveExtractError{Archive: upload.OriginalName, Cause: err}
	}

	extractErr := extractAll(ctx, &zr.Reader, outputDir)
	// The archive must be closed before it can be deleted on Windows.
	if closeErr := zr.Close(); closeErr != nil && extractErr == nil {
		extractErr = &ArchiveReadError{Archive: upload.OriginalName, Cause: closeErr}
	}

	wc = &WorkingContext{
		Name:       name,
		ContentDir: filepath.Join(outputDir, name),
		OutputDir:  outputDir,
	}
	if extractErr == nil && !isDir(wc.ContentDir) {
		extractErr = &ArchiveExtractError{
			Archive: upload.OriginalName,
			Cause:   fmt.Errorf("archive has no top-level %q folder", name),
		}
	}

	if extractErr != nil {
		logger.Error("cannot unpack uploaded archive", "path", upload.Path, "error", extractErr)
		if created {
			if rmErr := os.RemoveAll(outputDir); rmErr != nil {
				logger.Warn("cannot remove partial extraction", "dir", outputDir, "error", rmErr)
			}
		}
		var readErr *ArchiveReadError
		var writeErr *ArchiveExtractError
		if errors.As(extractErr, &readErr) || errors.As(extractErr, &writeErr) || ctx.Err() != nil {
			return nil, extractErr
		}
		return nil, &ArchiveExtractError{Archive: upload.OriginalName, Cause: extractErr}
	}

	if rmErr := os.Remove(upload.Path); rmErr != nil {
		logger.Warn("cannot delete uploaded archive", "path", upload.Path, "error", rmErr)
	}

	logger.Debug("archive extracted", "name", wc.Name, "content", wc.ContentDir)
	return wc, nil
}

func extractAll(ctx context.Context, zr *zip.Reader, destDir string) error {
	absDest, err := filepath.Abs(destDir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}

	for _, file := range zr.File {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("extraction canceled: %w", err)
		}

		destPath := filepath.Join(absDest, filepath.FromSlash(file.Name))
		rel, relErr := filepath.Rel(absDest, destPath)
		if relErr != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return &ArchiveExtractError{Archive: file.Name, Cause: fmt.Errorf("entry escapes the output directory")}
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0o755); err != nil {
				return &ArchiveExtractError{Archive: file.Name, Cause: err}
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return &ArchiveExtractError{Archive: file.Name, Cause: err}
		}
		if err := extractFile(file, destPath); err != nil {
			return err
		}
	}
	return nil
}

// extractFile copies one entry, telling decompression failures (ArchiveReadError)
// apart from write failures (ArchiveExtractError).
func extractFile(file *zip.File, destPath string) (err error) {
	rc, err := file.Open()
	if err != nil {
		return &ArchiveReadError{Archive: file.Name, Cause: err}
	}
	defer func() { _ = rc.Close() }()

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &ArchiveExtractError{Archive: file.Name, Cause: err}
	}
	defer func() {
		if closeErr := dest.Close(); closeErr != nil && err == nil {
			err = &ArchiveExtractError{Archive: file.Name, Cause: closeErr}
		}
	}()

	src := &readErrorTracker{r: rc}
	//nolint:gosec // G110: archive size is bounded by the upload layer
	if _, copyErr := io.Copy(dest, src); copyErr != nil {
		if src.err != nil {
			return &ArchiveReadError{Archive: file.Name, Cause: copyErr}
		}
		return &ArchiveExtractError{Archive: file.Name, Cause: copyErr}
	}
	return nil
}

// readErrorTracker remembers the first non-EOF read error.
type readErrorTracker struct {
	r   io.Reader
	err error
}

func (t *readErrorTracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && t.err == nil {
		t.err = err
	}
	return n, err
}

// stripExt returns the base name of p without its extension. ext, when set,
// is the only extension removed.
func stripExt(p, ext string) string {
	base := filepath.Base(strings.ReplaceAll(p, `\`, "/"))
	if ext == "" {
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return strings.TrimSuffix(base, "."+strings.TrimPrefix(ext, "."))
}

func validateName(name string) error {
	if err := platform.CheckWindowsFileName(name); err != nil {
		return fmt.Errorf("cannot use %q as the package name: %w", name, err)
	}
	return nil
}

// ensureDir creates dir if needed and reports whether it did.
func ensureDir(dir string) (bool, error) {
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, err
	}
	return true, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
