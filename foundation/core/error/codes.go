// File: codes.go
// Title: Error Codes
// Description: Structured error codes used across mDW Markup.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial error codes
// - 2026-10-17 v0.2.0: Markup syntax/semantic/depth codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Markup specific
	CodeMarkupSyntax   Code = "MARKUP_SYNTAX"
	CodeMarkupSemantic Code = "MARKUP_SEMANTIC"
	CodeMarkupDepth    Code = "MARKUP_DEPTH"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMarkupSyntax, CodeMarkupSemantic, CodeMarkupDepth:
		return "markup"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c {
	case CodeMarkupSyntax, CodeMarkupSemantic, CodeMarkupDepth:
		return 1
	case CodeInvalidInput, CodeNotFound, CodeConfigError, CodeInvalidConfig:
		return 2
	default:
		return 3
	}
}
