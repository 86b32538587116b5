// File: normalize.go
// Title: Command Token Normalization
// Description: Implements the separator normalization applied to command
//              tokens before lookup so that space, underscore, hyphen and
//              joined spellings resolve identically.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation

package catalog

import (
	"strings"

	mrcstringx "github.com/msto63/mRC/foundation/utils/stringx"
)

// separatorChars are the characters treated as insignificant when
// comparing command tokens
const separatorChars = "_ -"

// normalizeToken strips separators from a command token but preserves
// case. "ULRMC_RB", "ULRMC RB", "ULRMC-RB" and "ULRMCRB" all map to
// "ULRMCRB"; "ulrmc_rb" stays distinct.
func normalizeToken(token string) string {
	return mrcstringx.StripChars(strings.TrimSpace(token), separatorChars)
}

// foldToken normalizes a token for case-insensitive search matching
func foldToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
