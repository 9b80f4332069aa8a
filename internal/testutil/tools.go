// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"context"
	"path/filepath"
	"sync"

	"winpack-cli/internal/toolexec"
	"winpack-cli/internal/toolpath"
)

// FakeLocator resolves every tool to Dir/<tool>, or fails with Err.
type FakeLocator struct {
	Dir string
	Err error

	mu    sync.Mutex
	Calls []string
}

// Locate implements appx.ToolLocator.
func (l *FakeLocator) Locate(_ context.Context, toolName string) (string, error) {
	l.mu.Lock()
	l.Calls = append(l.Calls, toolName)
	l.mu.Unlock()

	if l.Err != nil {
		return "", l.Err
	}
	return filepath.Join(l.Dir, toolName), nil
}

// MissingToolLocator fails every lookup the way toolpath.Locator does.
func MissingToolLocator() *FakeLocator {
	return &FakeLocator{Err: &toolpath.ToolNotFoundError{Tool: "tool", Searched: []string{"appxsdk"}}}
}

// FakeRunner records commands and answers them with a canned output.
// Handle, when set, runs for each command before the canned output is
// returned, e.g. to create the artifact a real tool would write.
type FakeRunner struct {
	Output toolexec.Output
	Err    error
	Handle func(cmd toolexec.Command) error

	mu       sync.Mutex
	Commands []toolexec.Command
}

// Run implements toolexec.Runner.
func (r *FakeRunner) Run(_ context.Context, cmd toolexec.Command) (*toolexec.Output, error) {
	r.mu.Lock()
	r.Commands = append(r.Commands, cmd)
	r.mu.Unlock()

	if r.Handle != nil {
		if err := r.Handle(cmd); err != nil {
			return &toolexec.Output{ExitCode: toolexec.ExitCodeUnknown}, err
		}
	}
	out := r.Output
	return &out, r.Err
}

// Calls returns a copy of the recorded commands.
func (r *FakeRunner) Calls() []toolexec.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]toolexec.Command(nil), r.Commands...)
}
