// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"path/filepath"
)

const (
	// HostingNone indicates the process runs directly from its install location.
	HostingNone HostingType = ""
	// HostingAppService indicates an Azure App Service site, where the
	// application's physical path must be derived from HOME_EXPANDED.
	HostingAppService HostingType = "appservice"

	// AppServiceMarkerEnv is set by App Service for every hosted site.
	AppServiceMarkerEnv = "WEBSITE_SITE_NAME"
	// AppServiceHomeEnv holds the expanded physical path of the site's home.
	AppServiceHomeEnv = "HOME_EXPANDED"
)

// HostingType identifies the hosting environment of the process, if any.
type HostingType string

// DetectHosting returns the hosting environment of the current process.
func DetectHosting() HostingType {
	return DetectHostingFrom(os.Getenv)
}

// DetectHostingFrom performs hosting detection using the provided lookup function,
// so tests can inject an environment without mutating the process.
func DetectHostingFrom(getenv func(string) string) HostingType {
	if getenv(AppServiceMarkerEnv) != "" {
		return HostingAppService
	}
	return HostingNone
}

// AppRoot returns the directory that holds the application's bundled files.
// Under App Service this is "$HOME_EXPANDED/site/wwwroot"; otherwise it is
// installDir unchanged.
func AppRoot(getenv func(string) string, installDir string) string {
	if DetectHostingFrom(getenv) == HostingAppService {
		return filepath.Join(getenv(AppServiceHomeEnv), "site", "wwwroot")
	}
	return installDir
}
