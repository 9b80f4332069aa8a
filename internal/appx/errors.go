// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"errors"
	"fmt"

	"winpack-cli/internal/toolexec"
)

var (
	// ErrArchiveRead is the sentinel error wrapped by ArchiveReadError.
	ErrArchiveRead = errors.New("failed to open the uploaded content archive")
	// ErrArchiveExtract is the sentinel error wrapped by ArchiveExtractError.
	ErrArchiveExtract = errors.New("failed to unpack the uploaded content archive")
	// ErrUnsupportedPlatform is the sentinel error wrapped by UnsupportedPlatformError.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrManifestIdentityMissing is the sentinel error wrapped by ManifestIdentityError.
	ErrManifestIdentityMissing = errors.New("package identity missing from manifest")
	// ErrResourceIndex is the sentinel error wrapped by ResourceIndexError.
	ErrResourceIndex = errors.New("resource indexing failed")
	// ErrPackageBuild is the sentinel error wrapped by PackageBuildError.
	ErrPackageBuild = errors.New("package build failed")
)

type (
	// ArchiveReadError is returned when the uploaded archive cannot be opened
	// or its compressed data cannot be read.
	ArchiveReadError struct {
		Archive string
		Cause   error
	}

	// ArchiveExtractError is returned when the archive content cannot be
	// written to the output directory.
	ArchiveExtractError struct {
		Archive string
		Cause   error
	}

	// UnsupportedPlatformError is returned by tool operations on a non-Windows host.
	UnsupportedPlatformError struct {
		// Operation is a verb phrase such as "index Windows resources".
		Operation string
		GOOS      string
	}

	// ManifestIdentityError is returned when the manifest cannot be read or
	// carries no usable Identity Name.
	ManifestIdentityError struct {
		Manifest string
		// Cause is set when the manifest could not be read.
		Cause error
	}

	// toolFailure is the detail shared by ResourceIndexError and PackageBuildError.
	toolFailure struct {
		// Tool is the executable file name, e.g. "makepri.exe".
		Tool string
		// Message is the diagnostic scraped from the tool output.
		Message string
		// ExitCode is the tool's exit status, or toolexec.ExitCodeUnknown
		// when the process could not be started.
		ExitCode toolexec.ExitCode
		Stdout   string
		Stderr   string
		// Cause is set when the process could not be started or waited on.
		Cause error
	}

	// ResourceIndexError is returned when makepri fails. Its message is the
	// tool's own diagnostic text.
	ResourceIndexError struct{ toolFailure }

	// PackageBuildError is returned when makeappx fails. Its message is the
	// tool's own diagnostic text.
	PackageBuildError struct{ toolFailure }
)

// Error implements the error interface.
func (e *ArchiveReadError) Error() string {
	return fmt.Sprintf("%s: %v", ErrArchiveRead, e.Cause)
}

// Unwrap returns ErrArchiveRead and the cause.
func (e *ArchiveReadError) Unwrap() []error { return []error{ErrArchiveRead, e.Cause} }

// Error implements the error interface.
func (e *ArchiveExtractError) Error() string {
	return fmt.Sprintf("%s: %v", ErrArchiveExtract, e.Cause)
}

// Unwrap returns ErrArchiveExtract and the cause.
func (e *ArchiveExtractError) Unwrap() []error { return []error{ErrArchiveExtract, e.Cause} }

// Error implements the error interface.
func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("cannot %s on %s: the Windows SDK tools require a Windows host", e.Operation, e.GOOS)
}

// Unwrap returns ErrUnsupportedPlatform so callers can use errors.Is for programmatic detection.
func (e *UnsupportedPlatformError) Unwrap() error { return ErrUnsupportedPlatform }

// Error implements the error interface.
func (e *ManifestIdentityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot read the package identity from %s: %v", e.Manifest, e.Cause)
	}
	return fmt.Sprintf("%s has no <Identity Name=\"...\"> element", e.Manifest)
}

// Unwrap returns ErrManifestIdentityMissing and the cause, if any.
func (e *ManifestIdentityError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrManifestIdentityMissing, e.Cause}
	}
	return []error{ErrManifestIdentityMissing}
}

// Error returns the tool diagnostic unchanged.
func (e *ResourceIndexError) Error() string { return e.Message }

// Unwrap returns ErrResourceIndex and the cause, if any.
func (e *ResourceIndexError) Unwrap() []error { return e.unwrap(ErrResourceIndex) }

// Error returns the tool diagnostic unchanged.
func (e *PackageBuildError) Error() string { return e.Message }

// Unwrap returns ErrPackageBuild and the cause, if any.
func (e *PackageBuildError) Unwrap() []error { return e.unwrap(ErrPackageBuild) }

func (f *toolFailure) unwrap(sentinel error) []error {
	if f.Cause != nil {
		return []error{sentinel, f.Cause}
	}
	return []error{sentinel}
}
