// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code functionality including validation,
//              categorization, and load-failure classification.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation with code tests

package error

import (
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeNotFound, "NOT_FOUND"},
		{CodeDuplicateEntry, "DUPLICATE_ENTRY"},
		{CodeAmbiguousAlias, "AMBIGUOUS_ALIAS"},
		{CodeCatalogFormat, "CATALOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"known code", CodeDuplicateEntry, true},
		{"unknown code", Code("INVALID_CODE"), false},
		{"empty code", Code(""), false},
		{"catalog code", CodeAmbiguousAlias, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeDuplicateEntry, "catalog"},
		{CodeAmbiguousAlias, "catalog"},
		{CodeUnknownCategory, "catalog"},
		{CodeConfigError, "configuration"},
		{CodeValidationFailed, "validation"},
		{CodeNotFound, "generic"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Code.Category() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsLoadFailure(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeDuplicateEntry, true},
		{CodeAmbiguousAlias, true},
		{CodeUnknownCategory, true},
		{CodeCatalogFormat, true},
		{CodeNotFound, false},
		{CodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.IsLoadFailure(); got != tt.want {
				t.Errorf("Code.IsLoadFailure() = %v, want %v", got, tt.want)
			}
		})
	}
}
