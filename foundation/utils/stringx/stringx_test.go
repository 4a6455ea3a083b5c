// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Unit tests for the string helpers including Unicode handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: Reduced to the remaining helpers

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"spaces", "   ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"text", "  div ", false},
		{"unicode", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "tree", "json"); got != "tree" {
		t.Errorf("Expected 'tree', got '%s'", got)
	}
	if got := FirstNonBlank(" ", ""); got != "" {
		t.Errorf("Expected empty string, got '%s'", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"fits", "hello", 10, "...", "hello"},
		{"exact", "hello", 5, "...", "hello"},
		{"truncated", "hello world", 8, "...", "hello..."},
		{"unicode", "こんにちは世界", 4, "…", "こんに…"},
		{"ellipsis too long", "hello", 2, "...", "he"},
		{"zero length", "hello", 0, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, expected %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestCollapseSpace(t *testing.T) {
	got := CollapseSpace("\n        This works!\n            ")
	if got != "This works!" {
		t.Errorf("Expected 'This works!', got %q", got)
	}
}
