// SPDX-License-Identifier: MPL-2.0

package toolpath

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolNotFound is the sentinel error wrapped by ToolNotFoundError.
	ErrToolNotFound = errors.New("tool not found")
	// ErrRegistryUnavailable is returned by the registry lookup on hosts
	// without a Windows registry.
	ErrRegistryUnavailable = errors.New("windows registry is not available on this host")
)

// ToolNotFoundError is returned when neither the bundled tools folder nor the
// SDK installation contains the requested tool.
// It wraps ErrToolNotFound for errors.Is() compatibility.
type ToolNotFoundError struct {
	Tool     string
	Searched []string
	// Cause is the SDK lookup failure, if the registry could not be read.
	Cause error
}

// Error implements the error interface.
func (e *ToolNotFoundError) Error() string {
	msg := fmt.Sprintf("cannot find %s in the bundled tools folder or the Windows 10 SDK", e.Tool)
	if len(e.Searched) > 0 {
		msg += " (searched: " + strings.Join(e.Searched, ", ") + ")"
	}
	return msg
}

// Unwrap returns ErrToolNotFound and the lookup cause, if any.
func (e *ToolNotFoundError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrToolNotFound, e.Cause}
	}
	return []error{ErrToolNotFound}
}
