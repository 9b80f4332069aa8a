// SPDX-License-Identifier: MPL-2.0

package toolexec

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// DryRunner prints each command instead of running it and reports success.
type DryRunner struct {
	mu  sync.Mutex
	out io.Writer
	// Commands records every command passed to Run, in order.
	Commands []Command
}

// NewDryRunner creates a DryRunner printing to out; a nil out only records.
func NewDryRunner(out io.Writer) *DryRunner {
	return &DryRunner{out: out}
}

// Run implements Runner.
func (r *DryRunner) Run(ctx context.Context, cmd Command) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return &Output{ExitCode: ExitCodeUnknown}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.Commands = append(r.Commands, cmd)
	if r.out != nil {
		if _, err := fmt.Fprintln(r.out, CommandLine(cmd)); err != nil {
			return &Output{ExitCode: ExitCodeUnknown}, fmt.Errorf("write dry run: %w", err)
		}
	}
	return &Output{}, nil
}
