// File: suggest.go
// Title: Nearest-Match Command Suggestions
// Description: Implements edit-distance based suggestions for tokens that
//              did not resolve to a catalog entry.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation

package catalog

import (
	"sort"
	"strings"
)

// maxSuggestDistance bounds how far a suggestion may be from the token
const maxSuggestDistance = 3

// Suggest returns up to max canonical names close to the given token,
// nearest first. Distance is measured on the separator-stripped,
// case-folded forms. Tokens with no close neighbour yield an empty
// slice; the caller decides whether to present the result.
func (r *Registry) Suggest(token string, max int) []string {
	if max <= 0 {
		return nil
	}

	needle := strings.ToLower(normalizeToken(token))
	if needle == "" {
		return nil
	}

	type candidate struct {
		name     string
		distance int
	}

	candidates := make([]candidate, 0, 8)
	for _, entry := range r.entries {
		haystack := strings.ToLower(normalizeToken(entry.CanonicalName))
		d := editDistance(needle, haystack)
		// prefix extensions (PRESET -> PRESETSA) are good suggestions
		// even when the raw distance is large
		if d <= maxSuggestDistance || strings.HasPrefix(haystack, needle) {
			if d > maxSuggestDistance {
				d = maxSuggestDistance
			}
			candidates = append(candidates, candidate{entry.CanonicalName, d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}

	result := make([]string, len(candidates))
	for i, c := range candidates {
		result[i] = c.name
	}
	return result
}

// editDistance computes the Levenshtein distance between two strings
// using a two-row table
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
