// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// BuildPackage extracts upload, optionally generates its resource index, and
// packs it into "<output>/<base>/<name>.appx". The extracted content is
// removed afterwards whatever the outcome.
func (s *Service) BuildPackage(ctx context.Context, upload UploadedFile, generateIndex bool) (*InvocationResult, error) {
	logger := s.runLogger("package")

	wc, err := s.extract(ctx, logger, upload)
	if err != nil {
		return nil, err
	}
	defer s.cleanup(logger, wc)

	if generateIndex {
		pri, err := s.makePri(ctx, logger, wc, s.splitResources)
		if err != nil {
			return nil, err
		}

		target := filepath.Join(wc.ContentDir, filepath.Base(pri.Artifact))
		if s.dryRun {
			logger.Info("dry run: resource index would be moved", "from", pri.Artifact, "to", target)
		} else if err := os.Rename(pri.Artifact, target); err != nil {
			return nil, fmt.Errorf("move resource index into package folder: %w", err)
		}
	}

	res, err := s.makeAppx(ctx, logger, wc)
	if err != nil {
		return nil, err
	}
	logger.Info("package created", "package", res.Artifact)
	return res, nil
}

// BuildResourceIndex extracts upload and generates "<output>/<base>/resources.pri".
// The extracted content is removed afterwards whatever the outcome.
func (s *Service) BuildResourceIndex(ctx context.Context, upload UploadedFile) (*InvocationResult, error) {
	logger := s.runLogger("pri")

	wc, err := s.extract(ctx, logger, upload)
	if err != nil {
		return nil, err
	}
	defer s.cleanup(logger, wc)

	res, err := s.makePri(ctx, logger, wc, s.splitResources)
	if err != nil {
		return nil, err
	}
	logger.Info("resource index created", "pri", res.Artifact)
	return res, nil
}
