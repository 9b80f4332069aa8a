// SPDX-License-Identifier: MPL-2.0

// Package appx turns an uploaded content archive into a Windows Store package
// (.appx) or a resource index (.pri).
//
// A Service runs a short, strictly sequential pipeline:
//
//	Extract -> [MakePri -> move resources.pri into the content folder] -> MakeAppx -> Cleanup
//
// Extract unpacks the archive into "<output>/<upload base name>" and returns a
// WorkingContext. MakePri and MakeAppx drive the Windows SDK tools located
// through a ToolLocator and fail with UnsupportedPlatformError on non-Windows
// hosts. Cleanup always runs once the WorkingContext exists, whatever the
// outcome, and never turns a success into a failure.
package appx
