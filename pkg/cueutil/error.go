// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

type (
	// FieldError is one schema violation.
	FieldError struct {
		// Path is the field path, e.g. "pri.profile" or "kits[0].arch";
		// empty for file-level errors such as syntax errors.
		Path    string
		Message string
	}

	// ValidationError lists the schema violations found in one file.
	ValidationError struct {
		File   string
		Fields []FieldError
	}
)

// Error renders "<file>: <path>: <message>", one line per field when there
// are several.
func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Path == "" {
			lines = append(lines, f.Message)
		} else {
			lines = append(lines, f.Path+": "+f.Message)
		}
	}
	if len(lines) == 1 {
		return e.File + ": " + lines[0]
	}
	return e.File + ": validation failed:\n  " + strings.Join(lines, "\n  ")
}

// newValidationError converts a CUE error into a *ValidationError. Other
// errors are returned wrapped with the file name.
func newValidationError(file string, err error) error {
	var ce cueerrors.Error
	if !errors.As(err, &ce) {
		return fmt.Errorf("%s: %w", file, err)
	}

	ve := &ValidationError{File: file}
	for _, e := range cueerrors.Errors(err) {
		path := formatPath(cueerrors.Path(e))
		msg := e.Error()
		// CUE usually repeats the path at the start of the message.
		if path != "" && strings.HasPrefix(msg, path) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
		}
		ve.Fields = append(ve.Fields, FieldError{Path: path, Message: msg})
	}
	return ve
}

// formatPath renders ["kits", "0", "arch"] as "kits[0].arch".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		if _, err := strconv.Atoi(part); err == nil && i > 0 {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
