// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across mRC. These codes enable structured error handling, catalog
//              load diagnostics, and CLI exit behavior.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation with core and catalog error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for mRC
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Catalog specific
	CodeDuplicateEntry  Code = "DUPLICATE_ENTRY"
	CodeAmbiguousAlias  Code = "AMBIGUOUS_ALIAS"
	CodeUnknownCategory Code = "UNKNOWN_CATEGORY"
	CodeCatalogFormat   Code = "CATALOG_FORMAT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeDuplicateEntry, CodeAmbiguousAlias, CodeUnknownCategory, CodeCatalogFormat,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDuplicateEntry, CodeAmbiguousAlias, CodeUnknownCategory, CodeCatalogFormat:
		return "catalog"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}

// IsLoadFailure returns true for codes that make a catalog unusable.
// Load failures are terminal for the registry instance being built,
// lookup failures (NOT_FOUND) are recoverable by the caller.
func (c Code) IsLoadFailure() bool {
	switch c {
	case CodeDuplicateEntry, CodeAmbiguousAlias, CodeUnknownCategory, CodeCatalogFormat:
		return true
	default:
		return false
	}
}
