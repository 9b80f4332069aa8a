// SPDX-License-Identifier: MPL-2.0

package toolexec

import "strconv"

// ExitCode represents a process exit status code.
// The zero value (0) means success.
type ExitCode int

// ExitCodeUnknown marks processes that never started or whose status could not be read.
const ExitCodeUnknown ExitCode = -1

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
