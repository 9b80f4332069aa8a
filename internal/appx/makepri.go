// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"winpack-cli/internal/toolexec"
	"winpack-cli/internal/toolpath"
	"winpack-cli/pkg/appxmanifest"
	"winpack-cli/pkg/platform"

	"github.com/charmbracelet/log"
)

// MakePri indexes the resources in wc.ContentDir into
// "<wc.OutputDir>/resources.pri". split selects the split-by-qualifier
// profile instead of the single-file one.
func (s *Service) MakePri(ctx context.Context, wc *WorkingContext, split bool) (*InvocationResult, error) {
	return s.makePri(ctx, s.logger, wc, split)
}

func (s *Service) makePri(ctx context.Context, logger *log.Logger, wc *WorkingContext, split bool) (*InvocationResult, error) {
	if !platform.IsWindowsOS(s.goos) {
		return nil, &UnsupportedPlatformError{Operation: "index Windows resources", GOOS: s.goos}
	}

	if err := os.MkdirAll(wc.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	priPath := wc.ResourceIndexPath()
	if err := os.Remove(priPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("remove existing resource index: %w", err)
	}

	toolPath, err := s.locator.Locate(ctx, toolpath.MakePri)
	if err != nil {
		return nil, err
	}

	manifest := filepath.Join(wc.ContentDir, appxmanifest.FileName)
	identity, err := appxmanifest.ReadIdentityFile(manifest)
	if err != nil {
		return nil, &ManifestIdentityError{Manifest: manifest, Cause: err}
	}
	if identity == "" {
		return nil, &ManifestIdentityError{Manifest: manifest}
	}

	profile, release, err := s.profilePath(split)
	if err != nil {
		return nil, err
	}
	defer release()

	logger.Info("indexing resources", "identity", identity, "split", split)

	cmd := toolexec.Command{
		Path: toolPath,
		Args: []string{"new", "/pr", wc.ContentDir, "/cf", profile, "/of", priPath, "/in", identity, "/o"},
	}
	return s.invoke(ctx, logger, cmd, wc, priPath, "MakePri failed.", func(f toolFailure) error {
		return &ResourceIndexError{f}
	})
}
