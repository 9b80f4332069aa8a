// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"winpack-cli/internal/config"
	"winpack-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `winpack config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage winpack configuration",
		Long: `Manage winpack configuration.

Configuration is read from the first of:
  - the file given with --config
  - Linux: ~/.config/winpack/config.cue
  - macOS: ~/Library/Application Support/winpack/config.cue
  - Windows: %APPDATA%\winpack\config.cue
  - ./winpack.cue

Any value can be overridden with a WINPACK_ environment variable, e.g.
WINPACK_OUTPUT_DIR or WINPACK_PRI_PROFILE.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			showConfig(app)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprint(app.stdout, config.GenerateCUE(app.config()))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "init",
		Short:       "Create the default configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: ""},
		RunE: func(_ *cobra.Command, _ []string) error {
			path, written, err := config.CreateDefaultConfig(config.LoadOptions{})
			if err != nil {
				return app.fail(issue.WrapWithOperation(err, "create default configuration"), issue.ConfigLoadFailedId)
			}
			if !written {
				fmt.Fprintf(app.stdout, "%s Configuration already exists: %s\n", WarningStyle.Render("!"), CmdStyle.Render(path))
				return nil
			}
			fmt.Fprintf(app.stdout, "%s Created %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(path))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "path",
		Short:       "Show the configuration file path",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: ""},
		RunE: func(_ *cobra.Command, _ []string) error {
			path, found, err := config.ResolvePath(config.LoadOptions{ConfigFilePath: app.configFile})
			if err != nil {
				return app.fail(issue.WrapWithOperation(err, "resolve configuration path"), issue.ConfigLoadFailedId)
			}
			if found {
				fmt.Fprintln(app.stdout, path)
			} else {
				fmt.Fprintf(app.stdout, "%s %s\n", path, SubtitleStyle.Render("(not found, using defaults)"))
			}
			return nil
		},
	})

	return cfgCmd
}

func showConfig(app *App) {
	cfg := app.config()
	key := CmdStyle.Render
	value := SuccessStyle.Render

	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	source := app.cfgPath
	if source == "" {
		source = SubtitleStyle.Render("(using defaults)")
	}
	fmt.Fprintf(app.stdout, "%s: %s\n\n", key("Config file"), source)

	rows := []struct{ k, v string }{
		{"output_dir", cfg.OutputDir},
		{"tools.folder", cfg.Tools.Folder},
		{"tools.arch", orDefault(cfg.Tools.Arch, "host")},
		{"tools.kits_root", orDefault(cfg.Tools.KitsRoot, "registry")},
		{"pri.profile", cfg.PRI.Profile.String()},
		{"pri.config_file", orDefault(cfg.PRI.ConfigFile, "built-in")},
		{"exec.max_output_bytes", strconv.FormatInt(cfg.Exec.MaxOutputBytes, 10)},
		{"ui.verbose", strconv.FormatBool(cfg.UI.Verbose)},
		{"ui.color_scheme", cfg.UI.ColorScheme.String()},
	}
	for _, row := range rows {
		fmt.Fprintf(app.stdout, "%s: %s\n", key(row.k), value(row.v))
	}
}

// orDefault shows what an empty setting falls back to.
func orDefault(v, fallback string) string {
	if v == "" {
		return "(" + fallback + ")"
	}
	return v
}
