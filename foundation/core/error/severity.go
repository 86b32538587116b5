// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization
//              and logging behavior. Severity levels decide which log level an
//              error is reported at and whether a CLI run should abort.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: unknown lookup token, missing optional config keys
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unreadable user catalog file while the embedded catalog still works
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: catalog cannot be constructed, invalid configuration
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: embedded catalog corrupt
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

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Load-time catalog failures leave no usable registry
	case CodeDuplicateEntry, CodeAmbiguousAlias, CodeUnknownCategory, CodeCatalogFormat:
		return SeverityHigh

	// Configuration problems
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	// Low severity errors
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeRequiredField,
		CodeInvalidFormat:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
