// SPDX-License-Identifier: MPL-2.0

// Package platform provides host-platform helpers shared by the packaging
// pipeline and the CLI.
//
// It answers three questions: which operating system the process runs on,
// which Windows SDK architecture directory matches the host CPU, and whether
// the process runs under a hosting environment that remaps its install
// location (Azure App Service). It also carries the list of Windows reserved
// device names, which cannot be used as package or directory names.
package platform
