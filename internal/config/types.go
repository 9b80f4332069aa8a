// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"winpack-cli/internal/toolexec"
	"winpack-cli/internal/toolpath"
	"winpack-cli/pkg/platform"
)

const (
	// ColorSchemeAuto follows the terminal background.
	ColorSchemeAuto  ColorScheme = "auto"
	ColorSchemeDark  ColorScheme = "dark"
	ColorSchemeLight ColorScheme = "light"

	// ProfileSingle indexes every resource into one resources.pri.
	ProfileSingle ProfileMode = "single"
	// ProfileSplit splits resources per language, scale and DirectX feature level.
	ProfileSplit ProfileMode = "split"

	// DefaultOutputDir is the default directory extraction output goes under.
	DefaultOutputDir = "output"
)

var (
	// ErrInvalidColorScheme is wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("unknown ui.color_scheme")
	// ErrInvalidProfileMode is wrapped by InvalidProfileModeError.
	ErrInvalidProfileMode = errors.New("unknown pri.profile")
	// ErrInvalidToolArch is wrapped by InvalidToolArchError.
	ErrInvalidToolArch = errors.New("unknown tools.arch")
	// ErrInvalidConfig matches any *InvalidConfigError.
	ErrInvalidConfig = errors.New("configuration rejected")
)

type (
	// ColorScheme picks the glamour style for rendered error details.
	ColorScheme string

	// InvalidColorSchemeError reports a ColorScheme outside auto, dark and light.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// ProfileMode selects the built-in makepri configuration.
	ProfileMode string

	// InvalidProfileModeError is returned when a ProfileMode value is not recognized.
	InvalidProfileModeError struct {
		Value ProfileMode
	}

	// InvalidToolArchError is returned when tools.arch is not an SDK architecture.
	InvalidToolArchError struct {
		Value string
	}

	// InvalidConfigError aggregates every field problem Config.IsValid found.
	// errors.Is matches both ErrInvalidConfig and the per-field sentinels.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the merged result of defaults, config.cue and WINPACK_*
	// environment variables.
	Config struct {
		// OutputDir is where per-archive working directories and artifacts are created.
		OutputDir string `json:"output_dir" mapstructure:"output_dir"`
		// Tools configures where makepri.exe and makeappx.exe are found.
		Tools ToolsConfig `json:"tools" mapstructure:"tools"`
		// PRI configures resource indexing.
		PRI PRIConfig `json:"pri" mapstructure:"pri"`
		// Exec configures tool process execution.
		Exec ExecConfig `json:"exec" mapstructure:"exec"`
		UI   UIConfig   `json:"ui" mapstructure:"ui"`
	}

	// ToolsConfig configures the tool locator.
	ToolsConfig struct {
		Folder   string `json:"folder" mapstructure:"folder"`
		Arch     string `json:"arch" mapstructure:"arch"`
		KitsRoot string `json:"kits_root" mapstructure:"kits_root"`
	}

	// PRIConfig configures resource indexing.
	PRIConfig struct {
		// Profile selects the built-in makepri profile.
		Profile ProfileMode `json:"profile" mapstructure:"profile"`
		// ConfigFile, when set, replaces the built-in profiles.
		ConfigFile string `json:"config_file" mapstructure:"config_file"`
	}

	// ExecConfig configures tool process execution.
	ExecConfig struct {
		// MaxOutputBytes caps the captured stdout and stderr of each tool run.
		MaxOutputBytes int64 `json:"max_output_bytes" mapstructure:"max_output_bytes"`
	}

	// UIConfig holds terminal output preferences.
	UIConfig struct {
		// Verbose lowers the log level to debug, same as --verbose.
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}
)

func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("ui.color_scheme %q is not one of auto, dark, light", e.Value)
}

func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

func (s ColorScheme) String() string { return string(s) }

// IsValid reports whether s is auto, dark or light.
func (s ColorScheme) IsValid() (bool, []error) {
	if s == ColorSchemeAuto || s == ColorSchemeDark || s == ColorSchemeLight {
		return true, nil
	}
	return false, []error{&InvalidColorSchemeError{Value: s}}
}

// Error implements the error interface for InvalidProfileModeError.
func (e *InvalidProfileModeError) Error() string {
	return fmt.Sprintf("pri.profile %q is not one of single, split", e.Value)
}

// Unwrap returns ErrInvalidProfileMode.
func (e *InvalidProfileModeError) Unwrap() error { return ErrInvalidProfileMode }

func (m ProfileMode) String() string { return string(m) }

// Split reports whether the profile splits resources into resource packages.
func (m ProfileMode) Split() bool { return m == ProfileSplit }

// IsValid returns whether the ProfileMode is single or split.
func (m ProfileMode) IsValid() (bool, []error) {
	switch m {
	case ProfileSingle, ProfileSplit:
		return true, nil
	default:
		return false, []error{&InvalidProfileModeError{Value: m}}
	}
}

// Error implements the error interface for InvalidToolArchError.
func (e *InvalidToolArchError) Error() string {
	return fmt.Sprintf("tools.arch %q is not one of x86, x64, arm, arm64", e.Value)
}

// Unwrap returns ErrInvalidToolArch.
func (e *InvalidToolArchError) Unwrap() error { return ErrInvalidToolArch }

// IsValid returns whether the ToolsConfig has valid fields. An empty Arch
// selects the host architecture.
func (c ToolsConfig) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(c.Folder) == "" {
		errs = append(errs, fmt.Errorf("%w: tools.folder must not be empty", ErrInvalidConfig))
	}
	switch c.Arch {
	case "", platform.ArchX86, platform.ArchX64, platform.ArchARM, platform.ArchARM64:
	default:
		errs = append(errs, &InvalidToolArchError{Value: c.Arch})
	}
	return len(errs) == 0, errs
}

// IsValid checks every field and returns at most one error, an
// *InvalidConfigError listing all problems found.
func (c Config) IsValid() (bool, []error) {
	var problems []error
	if strings.TrimSpace(c.OutputDir) == "" {
		problems = append(problems, fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig))
	}
	if c.Exec.MaxOutputBytes <= 0 {
		problems = append(problems, fmt.Errorf("%w: exec.max_output_bytes must be positive, got %d", ErrInvalidConfig, c.Exec.MaxOutputBytes))
	}
	for _, check := range []func() (bool, []error){c.Tools.IsValid, c.PRI.Profile.IsValid, c.UI.ColorScheme.IsValid} {
		if ok, errs := check(); !ok {
			problems = append(problems, errs...)
		}
	}
	if len(problems) == 0 {
		return true, nil
	}
	return false, []error{&InvalidConfigError{FieldErrors: problems}}
}

func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig and the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the built-in configuration used for unset fields.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Tools: ToolsConfig{
			Folder:   toolpath.DefaultFolder,
			Arch:     "", // host architecture
			KitsRoot: "", // read from the registry
		},
		PRI: PRIConfig{
			Profile: ProfileSingle,
		},
		Exec: ExecConfig{
			MaxOutputBytes: toolexec.DefaultMaxOutput,
		},
		UI: UIConfig{ColorScheme: ColorSchemeAuto},
	}
}
