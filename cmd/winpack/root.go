// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// skipConfigAnnotation marks commands that must work without a loadable config.
const skipConfigAnnotation = "winpack:skip-config"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "winpack",
		Short: "Build Windows app packages and resource indexes",
		Long: TitleStyle.Render("winpack") + SubtitleStyle.Render(" - Windows app packaging with the SDK tools") + `

winpack takes a content archive, extracts it, and runs makepri.exe and
makeappx.exe from the Windows 10 SDK over the extracted folder. The folder
is removed again when the run ends, successful or not.

` + SubtitleStyle.Render("Examples:") + `
  winpack package app.zip           Build output/app/app.appx
  winpack package app.zip --pri     Index resources first, then pack
  winpack pri app.zip --split       Build a split resources.pri
  winpack locate makepri            Show which makepri.exe would run
  winpack config show               Show the effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, skip := cmd.Annotations[skipConfigAnnotation]; skip {
				return nil
			}
			return app.loadConfig(cmd.Context())
		},
	}

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configFile, "config", "", "config file (default is the winpack config directory, then ./winpack.cue)")

	rootCmd.AddCommand(
		newPackageCommand(app),
		newPRICommand(app),
		newLocateCommand(app),
		newIdentityCommand(app),
		newConfigCommand(app),
	)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the App and runs the command tree. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	slog.SetDefault(slog.New(app.Logger()))

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
