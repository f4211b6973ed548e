// Package misc holds build time information.
package misc

import (
	"runtime/debug"
)

// set by linker
var (
	appName = "cssshare"
	version = "dev"
	gitHash = ""
)

// GetAppName returns name of the program.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git commit program was built from. When not set by the
// linker it is taken from build info if available.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
