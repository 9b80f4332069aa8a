// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"winpack-cli/internal/issue"
	"winpack-cli/pkg/cueutil"
	"winpack-cli/pkg/platform"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "winpack"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// LocalConfigFileName is the config file looked up in the current directory.
	LocalConfigFileName = AppName + "." + ConfigFileExt
	// EnvPrefix prefixes environment variable overrides (WINPACK_OUTPUT_DIR).
	EnvPrefix = "WINPACK"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the per-user directory holding config.cue:
// %APPDATA%\winpack on Windows, ~/Library/Application Support/winpack on
// macOS and $XDG_CONFIG_HOME/winpack (or ~/.config/winpack) elsewhere.
//
//nolint:revive // config.Dir reads ambiguously next to OutputDir
func ConfigDir() (string, error) {
	base := ""
	switch runtime.GOOS {
	case platform.Windows:
		if base = os.Getenv("APPDATA"); base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		if base = os.Getenv("XDG_CONFIG_HOME"); base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, AppName), nil
}

// ResolvePath returns the config file Load would read, and whether it exists.
// With no file anywhere, it returns the path in the config directory.
func ResolvePath(opts LoadOptions) (string, bool, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, fileExists(opts.ConfigFilePath), nil
	}

	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", false, err
	}
	cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(cuePath) {
		return cuePath, true, nil
	}
	if fileExists(LocalConfigFileName) {
		return LocalConfigFileName, true, nil
	}
	return cuePath, false, nil
}

// loadWithOptions layers defaults, the resolved config file and WINPACK_*
// environment variables, in that order of precedence from lowest. The returned
// path is "" when no file was read.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("tools.folder", defaults.Tools.Folder)
	v.SetDefault("tools.arch", defaults.Tools.Arch)
	v.SetDefault("tools.kits_root", defaults.Tools.KitsRoot)
	v.SetDefault("pri.profile", defaults.PRI.Profile)
	v.SetDefault("pri.config_file", defaults.PRI.ConfigFile)
	v.SetDefault("exec.max_output_bytes", defaults.Exec.MaxOutputBytes)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, found, err := ResolvePath(opts)
	if err != nil {
		return nil, "", err
	}

	resolvedPath := ""
	switch {
	case found:
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Use 'winpack config show' to see the effective configuration").
				Wrap(err).
				BuildError()
		}
		resolvedPath = path
	case opts.ConfigFilePath != "":
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(opts.ConfigFilePath).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Check that the file exists and is readable").
			WithSuggestion("Use 'winpack config init' to write a default configuration").
			Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
			BuildError()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("decode merged config: %w", err)
	}

	// Environment overrides bypass the CUE schema, so validate the merged result.
	if valid, errs := cfg.IsValid(); !valid {
		resource := resolvedPath
		if resource == "" {
			resource = "environment"
		}
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resource).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check " + EnvPrefix + "_* environment variables for typos").
			Wrap(errors.Join(errs...)).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// configDirWithOverride returns configDirPath, or ConfigDir when it is empty.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadCUEIntoViper validates the file at path against #Config and merges it
// into v. Fields the file leaves out stay absent, so defaults and environment
// overrides still apply to them.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	// A cue.Context is not safe for concurrent use; compile per load.
	schema, err := cueutil.CompileSchema(configSchema, "#Config")
	if err != nil {
		return err
	}

	values, err := cueutil.Decode[map[string]any](schema, data,
		cueutil.WithFilename(path),
		cueutil.WithConcrete(false),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(values); err != nil {
		return fmt.Errorf("merge config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CreateDefaultConfig writes the default configuration into the config
// directory (or opts.ConfigDirPath) unless a file is already there. It returns
// the file path and whether it was written.
func CreateDefaultConfig(opts LoadOptions) (string, bool, error) {
	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", false, err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", false, fmt.Errorf("create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	f, err := os.OpenFile(cfgPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return cfgPath, false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("create config file: %w", err)
	}
	if _, err := f.WriteString(GenerateCUE(DefaultConfig())); err != nil {
		f.Close()
		return "", false, fmt.Errorf("write config file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", false, fmt.Errorf("write config file: %w", err)
	}
	return cfgPath, true, nil
}

// GenerateCUE renders cfg as a config.cue that loads back to the same values.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder
	sb.WriteString("// winpack configuration file\n\n")

	fmt.Fprintf(&sb, "output_dir: %q\n", cfg.OutputDir)

	sb.WriteString("\ntools: {\n")
	fmt.Fprintf(&sb, "\tfolder: %q\n", cfg.Tools.Folder)
	fmt.Fprintf(&sb, "\tarch: %q\n", cfg.Tools.Arch)
	fmt.Fprintf(&sb, "\tkits_root: %q\n", cfg.Tools.KitsRoot)
	sb.WriteString("}\n")

	sb.WriteString("\npri: {\n")
	fmt.Fprintf(&sb, "\tprofile: %q\n", cfg.PRI.Profile)
	fmt.Fprintf(&sb, "\tconfig_file: %q\n", cfg.PRI.ConfigFile)
	sb.WriteString("}\n")

	sb.WriteString("\nexec: {\n")
	fmt.Fprintf(&sb, "\tmax_output_bytes: %d\n", cfg.Exec.MaxOutputBytes)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	sb.WriteString("}\n")

	return sb.String()
}
