// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"context"
	"path/filepath"

	"winpack-cli/internal/toolexec"

	"github.com/charmbracelet/log"
)

// invoke runs cmd and turns a spawn failure or non-zero exit into the error
// built by fail. fallback is the message used when the tool printed no
// "error:" diagnostics.
func (s *Service) invoke(
	ctx context.Context,
	logger *log.Logger,
	cmd toolexec.Command,
	wc *WorkingContext,
	artifact string,
	fallback string,
	fail func(toolFailure) error,
) (*InvocationResult, error) {
	logger.Debug("invoking tool", "command", toolexec.CommandLine(cmd))

	out, runErr := s.runner.Run(ctx, cmd)
	if out == nil {
		out = &toolexec.Output{ExitCode: toolexec.ExitCodeUnknown}
	}

	failure := toolFailure{
		Tool:     filepath.Base(cmd.Path),
		ExitCode: out.ExitCode,
		Stdout:   out.Stdout,
		Stderr:   out.Stderr,
	}
	switch {
	case runErr != nil:
		failure.Message = toolexec.ErrorMessage(out.Stdout, runErr.Error())
		failure.Cause = runErr
		logger.Error("tool failed to run", "tool", failure.Tool, "error", runErr)
		return nil, fail(failure)
	case !out.ExitCode.IsSuccess():
		failure.Message = toolexec.ErrorMessage(out.Stdout, fallback)
		logger.Error("tool exited with an error", "tool", failure.Tool, "code", out.ExitCode, "message", failure.Message)
		return nil, fail(failure)
	}

	if out.Truncated {
		logger.Warn("tool output exceeded the capture limit and was truncated", "tool", failure.Tool)
	}

	return &InvocationResult{
		Dir:      wc.ContentDir,
		Artifact: artifact,
		Stdout:   out.Stdout,
		Stderr:   out.Stderr,
		ExitCode: out.ExitCode,
	}, nil
}
