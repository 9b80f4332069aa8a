// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"winpack-cli/internal/appx"
	"winpack-cli/internal/config"
	"winpack-cli/internal/issue"
	"winpack-cli/internal/toolexec"
	"winpack-cli/internal/toolpath"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: all Cobra command handlers receive an App reference and build
	// their appx.Service through it.
	App struct {
		Config ConfigProvider

		locator     appx.ToolLocator
		runner      toolexec.Runner
		serviceOpts []appx.Option
		stdout      io.Writer
		stderr      io.Writer
		logger      *log.Logger

		// flag values bound by NewRootCommand
		verbose    bool
		configFile string

		cfg     *config.Config
		cfgPath string
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp. Tests supply fakes for the tool
	// locator and runner so no SDK is needed.
	Dependencies struct {
		Config  ConfigProvider
		Locator appx.ToolLocator
		Runner  toolexec.Runner
		// ServiceOptions are applied after the options derived from configuration.
		ServiceOptions []appx.Option
		Stdout         io.Writer
		Stderr         io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}
)

// NewApp creates the CLI composition root.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Config:      deps.Config,
		locator:     deps.Locator,
		runner:      deps.Runner,
		serviceOpts: deps.ServiceOptions,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
		logger:      log.NewWithOptions(deps.Stderr, log.Options{Prefix: config.AppName}),
	}
}

// Logger returns the logger shared by all services of the App.
func (a *App) Logger() *log.Logger { return a.logger }

// loadConfig loads the configuration once per invocation and applies ui.verbose.
func (a *App) loadConfig(ctx context.Context) error {
	cfg, path, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.configFile})
	if err != nil {
		return a.fail(err, issue.ConfigLoadFailedId)
	}
	a.cfg, a.cfgPath = cfg, path

	if cfg.UI.Verbose {
		a.verbose = true
	}
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	a.logger.Debug("configuration loaded", "path", a.configSource())
	return nil
}

// config returns the loaded configuration, or the defaults for commands that
// skip loading.
func (a *App) config() *config.Config {
	if a.cfg == nil {
		return config.DefaultConfig()
	}
	return a.cfg
}

func (a *App) configSource() string {
	if a.cfgPath == "" {
		return "built-in defaults"
	}
	return a.cfgPath
}

// toolLocator returns the injected locator or one configured from tools.*.
func (a *App) toolLocator() appx.ToolLocator {
	if a.locator != nil {
		return a.locator
	}
	tools := a.config().Tools
	return toolpath.New(
		toolpath.WithFolder(tools.Folder),
		toolpath.WithArch(tools.Arch),
		toolpath.WithKitsRoot(tools.KitsRoot),
	)
}

// service builds the pipeline service for one command invocation.
func (a *App) service(split, dryRun bool) *appx.Service {
	cfg := a.config()

	runner := a.runner
	if runner == nil {
		runner = toolexec.NewExecRunner(cfg.Exec.MaxOutputBytes)
	}

	opts := []appx.Option{
		appx.WithLogger(a.logger),
		appx.WithOutputRoot(cfg.OutputDir),
		appx.WithSplitResources(split || cfg.PRI.Profile.Split()),
		appx.WithProfileFile(cfg.PRI.ConfigFile),
	}
	if dryRun {
		opts = append(opts, appx.WithDryRun(a.stdout))
	}
	opts = append(opts, a.serviceOpts...)

	return appx.NewService(a.toolLocator(), runner, opts...)
}

// glamourStyle is the issue catalog rendering style for ui.color_scheme.
func (a *App) glamourStyle() string {
	if a.cfg == nil {
		return "dark"
	}
	return a.cfg.UI.ColorScheme.String()
}
