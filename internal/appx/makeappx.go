// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"context"
	"fmt"
	"os"

	"winpack-cli/internal/toolexec"
	"winpack-cli/internal/toolpath"
	"winpack-cli/pkg/platform"

	"github.com/charmbracelet/log"
)

// MakeAppx packs wc.ContentDir into "<wc.OutputDir>/<wc.Name>.appx",
// overwriting an existing package.
func (s *Service) MakeAppx(ctx context.Context, wc *WorkingContext) (*InvocationResult, error) {
	return s.makeAppx(ctx, s.logger, wc)
}

func (s *Service) makeAppx(ctx context.Context, logger *log.Logger, wc *WorkingContext) (*InvocationResult, error) {
	if !platform.IsWindowsOS(s.goos) {
		return nil, &UnsupportedPlatformError{Operation: "generate a Windows Store package", GOOS: s.goos}
	}

	toolPath, err := s.locator.Locate(ctx, toolpath.MakeAppx)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(wc.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	packagePath := wc.PackagePath()
	logger.Info("building package", "package", packagePath)

	cmd := toolexec.Command{
		Path: toolPath,
		Args: []string{"pack", "/o", "/d", wc.ContentDir, "/p", packagePath, "/l"},
	}
	return s.invoke(ctx, logger, cmd, wc, packagePath, "MakeAppx failed.", func(f toolFailure) error {
		return &PackageBuildError{f}
	})
}
