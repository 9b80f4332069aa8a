// SPDX-License-Identifier: MPL-2.0

// Package toolpath resolves the filesystem location of the Windows SDK
// command-line tools (makepri.exe, makeappx.exe).
//
// A Locator checks the bundled tools folder next to the running executable
// first ("appxsdk/<tool>", remapped under Azure App Service), then the
// Windows 10 SDK installation recorded in the registry
// ("<KitsRoot10>\bin\<arch>\<tool>"). Results are never cached: each call
// re-resolves, so a tool installed while the process runs is picked up.
package toolpath
