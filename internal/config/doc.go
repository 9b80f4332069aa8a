// SPDX-License-Identifier: MPL-2.0

// Package config loads winpack settings: CUE files merged through Viper.
//
// Configuration is loaded from the platform config directory
// (%APPDATA%\winpack\config.cue on Windows, ~/.config/winpack/config.cue or the
// XDG equivalent on Linux, ~/Library/Application Support/winpack/config.cue on
// macOS), falling back to winpack.cue in the current directory. Any field can be
// overridden with a WINPACK_ environment variable, e.g. WINPACK_OUTPUT_DIR or
// WINPACK_PRI_PROFILE.
//
// Files are validated against the embedded CUE schema (config_schema.cue).
package config
