// SPDX-License-Identifier: MPL-2.0

package toolexec

import (
	"bytes"
	"context"
	"testing"
)

func TestCommandLine(t *testing.T) {
	t.Parallel()

	cmd := Command{
		Path: "makeappx.exe",
		Args: []string{"pack", "/o", "/d", "output/my app/app", "/p", "output/my app/app.appx", "/l"},
	}
	want := "makeappx.exe pack /o /d 'output/my app/app' /p 'output/my app/app.appx' /l"
	if got := CommandLine(cmd); got != want {
		t.Errorf("CommandLine() = %q, want %q", got, want)
	}
}

func TestDryRunner(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewDryRunner(&buf)

	out, err := r.Run(context.Background(), Command{Path: "makepri.exe", Args: []string{"new", "/o"}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !out.ExitCode.IsSuccess() {
		t.Errorf("ExitCode = %d, want 0", out.ExitCode)
	}
	if buf.String() != "makepri.exe new /o\n" {
		t.Errorf("printed %q", buf.String())
	}
	if len(r.Commands) != 1 {
		t.Errorf("recorded %d commands, want 1", len(r.Commands))
	}
}
