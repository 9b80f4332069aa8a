// SPDX-License-Identifier: MPL-2.0

// Package toolexec runs external command-line tools as child processes and
// captures their output for diagnostics.
//
// Arguments are always passed as an argument vector, never through a shell.
// Standard output and standard error are buffered in memory, each capped at a
// configurable size; output beyond the cap is discarded. There is no timeout:
// a child process runs until it exits or the context is canceled.
package toolexec
