// File: doc.go
// Title: String Utilities Package Documentation
// Description: Package documentation for the stringx utility package with
//              blank checks, case-insensitive comparison, truncation, and
//              padding helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14

/*
Package stringx provides string utilities that extend the Go standard library.

All functions are Unicode-aware: truncation and padding count runes rather
than bytes, so multi-byte characters are never split. The package has no
dependencies beyond the standard library and holds no state.

These helpers exist because the same small validations (IsBlank before
accepting a name, ContainsIgnoreCase for searches, Truncate for display)
appear throughout mRC.
*/
package stringx
