// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"winpack-cli/internal/issue"
)

// ServiceError is what command handlers return to the root error handler: the
// error itself, the pre-styled "Error: ..." line, and the catalog entry to
// render beneath it. Construct it with newServiceError.
type ServiceError struct {
	Err           error
	IssueID       issue.Id
	StyledMessage string
}

func newServiceError(err error, issueID issue.Id, styledMessage string) *ServiceError {
	if err == nil {
		panic("newServiceError: nil error")
	}
	return &ServiceError{Err: err, IssueID: issueID, StyledMessage: styledMessage}
}

func (e *ServiceError) Error() string { return e.Err.Error() }

func (e *ServiceError) Unwrap() error { return e.Err }

// renderServiceError prints any styled message first, then the issue help
// section rendered with the glamour style at stylePath.
func renderServiceError(w io.Writer, svcErr *ServiceError, stylePath string) {
	if svcErr == nil {
		return
	}

	if svcErr.StyledMessage != "" {
		fmt.Fprint(w, svcErr.StyledMessage)
	}

	if svcErr.IssueID == 0 {
		return
	}

	entry := issue.Get(svcErr.IssueID)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(stylePath)
	if err != nil {
		slog.Warn("cannot render issue help", "issue", svcErr.IssueID, "error", err)
		return
	}
	fmt.Fprint(w, rendered)
}
