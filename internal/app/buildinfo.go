package app

import "strings"

// Version is filled by ldflags in release builds.
var Version = "dev"

func BuildVersion() string {
	version := strings.TrimSpace(Version)
	if version == "" {
		return "dev"
	}

	return version
}
