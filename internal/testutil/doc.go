// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by the package tests.
//
// Must* helpers fail the test on error; UnsetEnv and SetHomeDir scope
// environment changes to the test like t.Setenv does.
// WriteZip and WriteAppArchive build upload fixtures shaped like real content
// archives. FakeLocator and FakeRunner stand in for the Windows SDK tools so
// the pipelines can be exercised on any host.
package testutil
