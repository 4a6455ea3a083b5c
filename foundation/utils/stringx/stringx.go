// File: stringx.go
// Title: Core String Utilities
// Description: Small string helpers shared by the configuration loader, the
//              CLI output and the viewer.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string functions
// - 2026-10-17 v0.2.0: Reduced to blank checks, truncation and line helpers;
//                      added CollapseSpace
// - 2026-10-18 v0.2.1: Removed SplitLines

// Package stringx provides Unicode-aware string helpers.
package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if !IsBlank(s) {
			return s
		}
	}
	return ""
}

// Truncate truncates a string to maxLen runes, adding an ellipsis if truncated.
// If the ellipsis does not fit, the string is cut without it.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// CollapseSpace replaces every run of whitespace with a single space and
// trims both ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
