// SPDX-License-Identifier: MPL-2.0

package appx

import (
	"os"

	"github.com/charmbracelet/log"
)

// Cleanup removes wc.ContentDir, then wc.OutputDir if nothing else is left in
// it. Failures are logged, never returned.
func (s *Service) Cleanup(wc *WorkingContext) {
	s.cleanup(s.logger, wc)
}

func (s *Service) cleanup(logger *log.Logger, wc *WorkingContext) {
	if wc == nil {
		return
	}

	if err := os.RemoveAll(wc.ContentDir); err != nil {
		logger.Error("error deleting content folder", "dir", wc.ContentDir, "error", err)
	}

	entries, err := os.ReadDir(wc.OutputDir)
	if err != nil {
		logger.Error("error deleting output folder", "dir", wc.OutputDir, "error", err)
		return
	}
	if len(entries) > 0 {
		return
	}
	if err := os.Remove(wc.OutputDir); err != nil {
		logger.Error("error deleting output folder", "dir", wc.OutputDir, "error", err)
	}
}
