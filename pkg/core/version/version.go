// ============================================================================
// mDW Markup - Markup Parser und Strukturpruefung
// ============================================================================
//
// Package:     version
// Description: Central version management for the markup tool and its components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the markup tool
const (
	// Tool version of mdwmarkup
	Tool = "0.1.0"

	// Component versions
	Parser   = "0.1.0"
	Analyzer = "0.1.0"
	Renderer = "0.1.0"
	Viewer   = "0.1.0"
)

// Build information, set via -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "analyzer":
		return Analyzer
	case "render", "renderer":
		return Renderer
	case "viewer":
		return Viewer
	default:
		return Tool
	}
}

// Info returns a multi-line description of the build
func Info() string {
	return fmt.Sprintf("mdwmarkup v%s\n"+
		"  Git Commit: %s\n"+
		"  Build Date: %s\n"+
		"  Go Version: %s\n"+
		"  OS/Arch:    %s/%s\n",
		Tool, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
