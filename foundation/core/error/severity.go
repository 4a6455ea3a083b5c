// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for structured errors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2025-01-24

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem with user input, e.g. malformed markup
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error such as an unusable configuration
	SeverityHigh

	// SeverityCritical indicates a failure of the program itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeMarkupSyntax, CodeMarkupSemantic, CodeMarkupDepth:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
