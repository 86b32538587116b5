// File: doc.go
// Title: Package Documentation for the Command Catalog
// Description: Provides package-level documentation for the catalog package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial documentation

// Package catalog holds the remote-command catalog for the Anritsu
// MT8000A / MT8821C radio communication test stations and provides
// lookup and search over it.
//
// The catalog is an immutable registry built once from a set of command
// records (the embedded default set or an external TOML file). After a
// successful Build the registry never changes, so it can be shared
// across goroutines without locking.
//
// Lookup is case-sensitive but tolerant of separator spelling: the
// tokens "ULRMC_RB", "ULRMC RB", "ULRMC-RB" and "ULRMCRB" all resolve
// to the same command. Search is a case-insensitive substring match
// over names, aliases and descriptions, optionally restricted to one
// of the sixteen fixed categories.
//
// Aliases carry a provenance marker because part of the source material
// was recovered via OCR; spellings that could not be verified against
// the instrument documentation are tagged ProvenanceOCR so callers can
// surface the uncertainty.
package catalog
