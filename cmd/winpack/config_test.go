// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"winpack-cli/internal/config"
	"winpack-cli/internal/issue"
	"winpack-cli/pkg/platform"
)

func TestConfigShow(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil, nil, func(c *config.Config) { c.PRI.Profile = config.ProfileSplit })
	if err := f.run("config", "show"); err != nil {
		t.Fatalf("config show error = %v", err)
	}

	out := f.stdout.String()
	for _, want := range []string{"(using defaults)", f.outputRoot, "split", "(registry)", "1048576"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigDump_Loadable(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil, nil, func(c *config.Config) { c.Tools.Arch = platform.ArchARM64 })
	if err := f.run("config", "dump"); err != nil {
		t.Fatalf("config dump error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "dump.cue")
	if err := os.WriteFile(path, f.stdout.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, err := config.NewProvider().Load(context.Background(), config.LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("dumped config does not load: %v", err)
	}
	if cfg.Tools.Arch != platform.ArchARM64 || cfg.OutputDir != f.outputRoot {
		t.Errorf("dumped config = %+v", cfg)
	}
}

func TestConfigPath_SkipsLoading(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	app := NewApp(Dependencies{
		Config: staticConfig{err: errors.New("broken config")},
		Stdout: &stdout,
		Stderr: &bytes.Buffer{},
	})
	root := NewRootCommand(app)

	explicit := filepath.Join(t.TempDir(), "custom.cue")
	root.SetArgs([]string{"config", "path", "--config", explicit})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if out := stdout.String(); !strings.Contains(out, explicit) || !strings.Contains(out, "not found") {
		t.Errorf("stdout = %q", out)
	}
}

func TestConfigInit(t *testing.T) {
	if runtime.GOOS != platform.Linux {
		t.Skip("XDG config directory only applies on Linux")
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	want := filepath.Join(xdg, config.AppName, "config.cue")

	f := newFixture(t, nil, nil, nil)
	if err := f.run("config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(f.stdout.String(), "Created") {
		t.Errorf("stdout = %q", f.stdout.String())
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	f.stdout.Reset()
	if err := f.run("config", "init"); err != nil {
		t.Fatalf("second config init error = %v", err)
	}
	if !strings.Contains(f.stdout.String(), "already exists") {
		t.Errorf("stdout = %q", f.stdout.String())
	}
}

func TestConfigLoadFailure(t *testing.T) {
	t.Parallel()

	loadErr := issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(errors.New("pri.profile: conflicting values")).
		BuildError()

	app := NewApp(Dependencies{
		Config: staticConfig{err: loadErr},
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})
	root := NewRootCommand(app)
	root.SetArgs([]string{"config", "show"})

	svcErr := requireServiceError(t, root.ExecuteContext(context.Background()), ExitFailure, issue.ConfigLoadFailedId)
	if !strings.Contains(svcErr.StyledMessage, "pri.profile") {
		t.Errorf("StyledMessage = %q", svcErr.StyledMessage)
	}
}
