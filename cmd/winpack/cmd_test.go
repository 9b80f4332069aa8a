// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"winpack-cli/internal/appx"
	"winpack-cli/internal/config"
	"winpack-cli/internal/issue"
	"winpack-cli/internal/testutil"
	"winpack-cli/internal/toolexec"
	"winpack-cli/internal/toolpath"
	"winpack-cli/pkg/platform"
)

type (
	// staticConfig is a ConfigProvider that returns a fixed configuration.
	staticConfig struct {
		cfg  *config.Config
		path string
		err  error
	}

	// cliFixture is an App wired to fakes, with captured output.
	cliFixture struct {
		app        *App
		stdout     *bytes.Buffer
		stderr     *bytes.Buffer
		runner     *testutil.FakeRunner
		outputRoot string
	}
)

func (s staticConfig) Load(context.Context, config.LoadOptions) (*config.Config, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	cfg := *s.cfg
	return &cfg, s.path, nil
}

// newFixture builds a Windows-host App whose tools resolve to sdk/<tool> and
// run through runner. mutate, when set, edits the configuration first.
func newFixture(t *testing.T, locator appx.ToolLocator, runner *testutil.FakeRunner, mutate func(*config.Config), opts ...appx.Option) *cliFixture {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "output")
	if mutate != nil {
		mutate(cfg)
	}
	if locator == nil {
		locator = &testutil.FakeLocator{Dir: "sdk"}
	}
	if runner == nil {
		runner = fakeTools()
	}

	f := &cliFixture{
		stdout:     &bytes.Buffer{},
		stderr:     &bytes.Buffer{},
		runner:     runner,
		outputRoot: cfg.OutputDir,
	}
	f.app = NewApp(Dependencies{
		Config:         staticConfig{cfg: cfg},
		Locator:        locator,
		Runner:         runner,
		ServiceOptions: append([]appx.Option{appx.WithHostOS(platform.Windows)}, opts...),
		Stdout:         f.stdout,
		Stderr:         f.stderr,
	})
	return f
}

func (f *cliFixture) run(args ...string) error {
	root := NewRootCommand(f.app)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

// fakeTools behaves like makepri and makeappx by writing the file named after /of or /p.
func fakeTools() *testutil.FakeRunner {
	return &testutil.FakeRunner{Handle: func(cmd toolexec.Command) error {
		switch filepath.Base(cmd.Path) {
		case toolpath.MakePri:
			return os.WriteFile(argAfter(cmd.Args, "/of"), []byte("pri"), 0o644)
		case toolpath.MakeAppx:
			return os.WriteFile(argAfter(cmd.Args, "/p"), []byte("appx"), 0o644)
		}
		return nil
	}}
}

func argAfter(args []string, flag string) string {
	i := slices.Index(args, flag)
	if i < 0 || i+1 >= len(args) {
		return ""
	}
	return args[i+1]
}

// requireServiceError asserts err is an ExitError carrying a ServiceError for wantIssue.
func requireServiceError(t *testing.T, err error, wantCode int, wantIssue issue.Id) *ServiceError {
	t.Helper()

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v (%T), want *ExitError", err, err)
	}
	if exitErr.Code != wantCode {
		t.Errorf("exit code = %d, want %d", exitErr.Code, wantCode)
	}
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error = %v, want *ServiceError in chain", err)
	}
	if svcErr.IssueID != wantIssue {
		t.Errorf("IssueID = %d, want %d", svcErr.IssueID, wantIssue)
	}
	return svcErr
}
