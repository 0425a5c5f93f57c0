// Package misc keeps program identity, set at build time with -ldflags.
package misc

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

var (
	appName string
	version string
	gitHash string
)

// GetAppName returns program name without extension.
func GetAppName() string {
	if appName != "" {
		return appName
	}
	if exe, err := os.Executable(); err == nil {
		return strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
	}
	return "bmlc"
}

// GetVersion returns program version or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev"
}

// GetGitHash returns vcs revision program was built from.
func GetGitHash() string {
	if gitHash != "" {
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
