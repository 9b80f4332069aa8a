// SPDX-License-Identifier: MPL-2.0

package toolexec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

type (
	// Command describes one tool invocation.
	Command struct {
		// Path is the absolute path of the executable.
		Path string
		// Args are passed verbatim, without shell interpretation.
		Args []string
		// Dir is the working directory; empty means the current directory.
		Dir string
		// Env is appended to the inherited environment.
		Env []string
	}

	// Output is what a finished tool invocation produced.
	Output struct {
		Stdout   string
		Stderr   string
		ExitCode ExitCode
		// Truncated reports whether either stream exceeded the capture limit.
		Truncated bool
	}

	// Runner starts a tool and waits for it to exit.
	//
	// A non-zero exit is not an error: it is reported through Output.ExitCode.
	// Run returns an error only when the process could not be started or
	// waited on; the returned Output still carries whatever was captured.
	Runner interface {
		Run(ctx context.Context, cmd Command) (*Output, error)
	}

	// ExecRunner runs tools as child processes of the current process.
	ExecRunner struct {
		// MaxOutput caps each captured stream; zero means DefaultMaxOutput.
		MaxOutput int64
	}
)

// NewExecRunner creates an ExecRunner with the given capture limit.
func NewExecRunner(maxOutput int64) *ExecRunner {
	return &ExecRunner{MaxOutput: maxOutput}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (*Output, error) {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	stdout := newCappedBuffer(r.MaxOutput)
	stderr := newCappedBuffer(r.MaxOutput)
	c.Stdout = stdout
	c.Stderr = stderr

	slog.Debug("running tool", "command", CommandLine(cmd), "dir", cmd.Dir)

	err := c.Run()
	out := &Output{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Truncated: stdout.truncated || stderr.truncated,
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			out.ExitCode = ExitCode(exitErr.ExitCode())
			return out, nil
		}
		out.ExitCode = ExitCodeUnknown
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out, fmt.Errorf("run %s: %w", cmd.Path, ctxErr)
		}
		return out, fmt.Errorf("run %s: %w", cmd.Path, err)
	}

	return out, nil
}
