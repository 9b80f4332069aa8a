// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for winpack.
package cmd
