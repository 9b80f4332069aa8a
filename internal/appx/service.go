// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"winpack-cli/internal/toolexec"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultOutputRoot is the directory extraction output and artifacts go under.
const DefaultOutputRoot = "output"

type (
	// Service runs the packaging pipelines. It holds no per-run state, so one
	// Service can serve concurrent invocations.
	Service struct {
		locator ToolLocator
		runner  toolexec.Runner
		logger  *log.Logger

		outputRoot     string
		splitResources bool
		profileFile    string
		dryRun         bool
		goos           string
	}

	// Option configures a Service.
	Option func(*Service)
)

// NewService creates a Service that resolves tools with locator and runs them with runner.
func NewService(locator ToolLocator, runner toolexec.Runner, opts ...Option) *Service {
	s := &Service{
		locator:    locator,
		runner:     runner,
		outputRoot: DefaultOutputRoot,
		goos:       runtime.GOOS,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "appx"})
	}
	return s
}

// WithLogger sets the logger; cleanup failures are reported through it.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithOutputRoot sets the directory working and output directories are created in.
func WithOutputRoot(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.outputRoot = dir
		}
	}
}

// WithSplitResources selects the split-by-qualifier indexing profile for the
// pipelines instead of the single-file one.
func WithSplitResources(split bool) Option {
	return func(s *Service) {
		s.splitResources = split
	}
}

// WithProfileFile replaces both built-in indexing profiles with a file on disk.
func WithProfileFile(path string) Option {
	return func(s *Service) {
		s.profileFile = path
	}
}

// WithDryRun prints tool command lines to w instead of running the tools.
func WithDryRun(w io.Writer) Option {
	return func(s *Service) {
		s.runner = toolexec.NewDryRunner(w)
		s.dryRun = true
	}
}

// WithHostOS overrides the detected host operating system (a GOOS value).
func WithHostOS(goos string) Option {
	return func(s *Service) {
		s.goos = goos
	}
}

// runLogger returns a logger tagged with a fresh run id.
func (s *Service) runLogger(op string) *log.Logger {
	return s.logger.With("run", uuid.NewString()[:8], "op", op)
}

func joinPath(elem ...string) string {
	return filepath.Join(elem...)
}
