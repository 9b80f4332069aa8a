// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"winpack-cli/internal/appx"
	"winpack-cli/internal/config"
	"winpack-cli/internal/issue"
	"winpack-cli/internal/toolpath"

	"github.com/charmbracelet/fang"
)

// classifyError maps pipeline failures to issue catalog IDs. An issue already
// attached to an ActionableError wins over the error kind.
func classifyError(err error) issue.Id {
	if id := issue.IssueOf(err); id != 0 {
		return id
	}

	switch {
	case errors.Is(err, toolpath.ErrToolNotFound):
		return issue.ToolNotFoundId
	case errors.Is(err, appx.ErrUnsupportedPlatform):
		return issue.UnsupportedPlatformId
	case errors.Is(err, appx.ErrArchiveRead):
		return issue.ArchiveReadId
	case errors.Is(err, appx.ErrArchiveExtract):
		return issue.ArchiveExtractId
	case errors.Is(err, appx.ErrManifestIdentityMissing):
		return issue.ManifestIdentityMissingId
	case errors.Is(err, appx.ErrResourceIndex):
		return issue.ResourceIndexFailedId
	case errors.Is(err, appx.ErrPackageBuild):
		return issue.PackageBuildFailedId
	case errors.Is(err, config.ErrInvalidConfig):
		return issue.ConfigLoadFailedId
	default:
		return 0
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// fail wraps err for the error handler: exit code 1, the styled message, and
// the issue catalog entry (fallback is used when err maps to none).
func (a *App) fail(err error, fallback issue.Id) error {
	return a.exit(ExitFailure, err, fallback)
}

func (a *App) exit(code int, err error, fallback issue.Id) error {
	id := classifyError(err)
	if id == 0 {
		id = fallback
	}
	styled := fmt.Sprintf("%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, a.verbose))
	return &ExitError{Code: code, Err: newServiceError(err, id, styled)}
}

// handleError is the fang error handler. ServiceErrors are rendered with their
// catalog entry; anything else (usage errors) goes to fang's default handler.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(w, svcErr, a.glamourStyle())
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
