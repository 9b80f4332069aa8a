// SPDX-License-Identifier: MPL-2.0

package toolpath

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"winpack-cli/pkg/platform"
)

const (
	// DefaultFolder is the bundled tools folder, relative to the application root.
	DefaultFolder = "appxsdk"

	// MakePri is the resource indexing tool.
	MakePri = "makepri.exe"
	// MakeAppx is the packaging tool.
	MakeAppx = "makeappx.exe"
)

type (
	// Locator resolves tool paths. The zero value is not usable; create one with New.
	Locator struct {
		appDir   string
		folder   string
		arch     string
		kitsRoot string

		getenv     func(string) string
		lookupKits func() (string, error)
		stat       func(string) (fs.FileInfo, error)
	}

	// Option configures a Locator.
	Option func(*Locator)
)

// New creates a Locator for the running executable and the host architecture.
func New(opts ...Option) *Locator {
	l := &Locator{
		appDir:     executableDir(),
		folder:     DefaultFolder,
		arch:       platform.SDKArch(),
		getenv:     os.Getenv,
		lookupKits: registryKitsRoot,
		stat:       os.Stat,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithAppDir overrides the application install directory.
func WithAppDir(dir string) Option {
	return func(l *Locator) {
		if dir != "" {
			l.appDir = dir
		}
	}
}

// WithFolder overrides the bundled tools folder name.
func WithFolder(folder string) Option {
	return func(l *Locator) {
		if folder != "" {
			l.folder = folder
		}
	}
}

// WithArch overrides the SDK architecture directory (x64, x86, arm, arm64).
func WithArch(arch string) Option {
	return func(l *Locator) {
		if arch != "" {
			l.arch = arch
		}
	}
}

// WithKitsRoot pins the SDK root and skips the registry query.
func WithKitsRoot(root string) Option {
	return func(l *Locator) {
		l.kitsRoot = root
	}
}

// WithEnv replaces the environment lookup used for hosting detection.
func WithEnv(getenv func(string) string) Option {
	return func(l *Locator) {
		l.getenv = getenv
	}
}

// WithKitsRootLookup replaces the registry query.
func WithKitsRootLookup(lookup func() (string, error)) Option {
	return func(l *Locator) {
		l.lookupKits = lookup
	}
}

// Locate returns the absolute path of toolName, preferring the bundled copy
// over the SDK installation.
func (l *Locator) Locate(ctx context.Context, toolName string) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("locate %s canceled: %w", toolName, ctx.Err())
	default:
	}

	bundled := l.BundledPath(toolName)
	if l.isFile(bundled) {
		slog.Debug("using bundled tool", "tool", toolName, "path", bundled)
		return absPath(bundled), nil
	}
	searched := []string{bundled}

	sdkPath, err := l.SDKPath(toolName)
	if err != nil {
		slog.Debug("windows SDK lookup failed", "tool", toolName, "error", err)
		return "", &ToolNotFoundError{Tool: toolName, Searched: searched, Cause: err}
	}
	if !l.isFile(sdkPath) {
		return "", &ToolNotFoundError{Tool: toolName, Searched: append(searched, sdkPath)}
	}

	slog.Debug("using windows SDK tool", "tool", toolName, "path", sdkPath)
	return absPath(sdkPath), nil
}

// BundledPath returns where the bundled copy of toolName is expected.
func (l *Locator) BundledPath(toolName string) string {
	return filepath.Join(platform.AppRoot(l.getenv, l.appDir), l.folder, toolName)
}

// SDKPath returns where the SDK copy of toolName is expected, without
// checking that it exists.
func (l *Locator) SDKPath(toolName string) (string, error) {
	root := l.kitsRoot
	if root == "" {
		var err error
		root, err = l.lookupKits()
		if err != nil {
			return "", fmt.Errorf("cannot find the Windows 10 SDK tools: %w", err)
		}
	}

	root = strings.TrimRight(root, "\r\n")
	if root == "" {
		return "", fmt.Errorf("cannot find the Windows 10 SDK tools: empty KitsRoot10")
	}
	return filepath.Join(root, "bin", l.arch, toolName), nil
}

func (l *Locator) isFile(path string) bool {
	info, err := l.stat(path)
	return err == nil && !info.IsDir()
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, evalErr := filepath.EvalSymlinks(exe); evalErr == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
