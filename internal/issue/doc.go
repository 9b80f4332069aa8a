// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation and its resource along with
// remediation hints. The issue catalog holds longer Markdown guidance for each
// packaging failure class, rendered for the terminal with glamour.
package issue
