// ============================================================================
// eiya - Pattern Based Date Engine
// ============================================================================
//
// Package:     version
// Description: Central version management for the library, server and CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Library version of the date engine
	Library = "1.0.0"

	// Component versions
	Gregor     = "1.0.0"
	CLI        = "1.0.0"
	Playground = "0.9.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/eiya/pkg/core/version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// ServiceVersion returns the version for a given component name
func ServiceVersion(name string) string {
	switch name {
	case "gregor":
		return Gregor
	case "cli", "eiya":
		return CLI
	case "playground":
		return Playground
	default:
		return Library
	}
}

// Info describes the running binary
type Info struct {
	Component string `json:"component"`
	Version   string `json:"version"`
	Library   string `json:"library"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of component
func Get(component string) Info {
	return Info{
		Component: component,
		Version:   ServiceVersion(component),
		Library:   Library,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("%s %s (library %s, commit %s, built %s, %s %s)",
		i.Component, i.Version, i.Library, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
