// File: registry_test.go
// Title: Command Registry Tests
// Description: Tests for registry construction, lookup, search, and the
//              error conditions of the command catalog.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial test implementation

package catalog

import (
	"testing"

	mrcerror "github.com/msto63/mRC/foundation/core/error"
)

func testRecords() []CommandEntry {
	return []CommandEntry{
		{
			CanonicalName:  "PRESET",
			SyntaxTemplate: "PRESET",
			Description:    "Initialize all parameters for NSA operation.",
			Category:       CategorySystemControl,
		},
		{
			CanonicalName:  "PRESET_SA",
			SyntaxTemplate: "PRESET_SA",
			Description:    "Initialize all parameters for SA operation.",
			Category:       CategorySystemControl,
		},
		{
			CanonicalName:  "ULRMC_RB",
			SyntaxTemplate: "ULRMC_RB <cc>,<rb>",
			Description:    "Set the uplink RMC number of resource blocks.",
			Category:       CategoryRMCConfiguration,
			Aliases:        []Alias{{Name: "ULRMC_R8", Provenance: ProvenanceOCR}},
		},
		{
			CanonicalName:  "CALLSTAT?",
			SyntaxTemplate: "CALLSTAT?",
			Description:    "Query the current call processing status.",
			Category:       CategoryCallProcessing,
			Aliases:        []Alias{{Name: "CALLSTA?", Provenance: ProvenanceOCR}},
		},
		{
			CanonicalName:  "OLVL",
			SyntaxTemplate: "OLVL <cc>,<level>",
			Description:    "Set the output level in dBm.",
			Category:       CategoryLevelFrequency,
		},
	}
}

func mustBuild(t *testing.T, records []CommandEntry) *Registry {
	t.Helper()
	r, err := Build(records, Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return r
}

func TestBuildAndLookupRoundTrip(t *testing.T) {
	r := mustBuild(t, testRecords())

	for _, record := range testRecords() {
		entry, err := r.Lookup(record.CanonicalName)
		if err != nil {
			t.Errorf("Lookup(%q) error = %v", record.CanonicalName, err)
			continue
		}
		if entry.CanonicalName != record.CanonicalName {
			t.Errorf("Lookup(%q) = %q", record.CanonicalName, entry.CanonicalName)
		}

		for _, alias := range record.Aliases {
			entry, err := r.Lookup(alias.Name)
			if err != nil {
				t.Errorf("Lookup(alias %q) error = %v", alias.Name, err)
				continue
			}
			if entry.CanonicalName != record.CanonicalName {
				t.Errorf("Lookup(alias %q) = %q, want %q",
					alias.Name, entry.CanonicalName, record.CanonicalName)
			}
		}
	}
}

func TestLookupSeparatorVariants(t *testing.T) {
	r := mustBuild(t, testRecords())

	variants := []string{"ULRMC_RB", "ULRMC RB", "ULRMC-RB", "ULRMCRB", " ULRMC_RB "}
	for _, token := range variants {
		t.Run(token, func(t *testing.T) {
			entry, err := r.Lookup(token)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", token, err)
			}
			if entry.CanonicalName != "ULRMC_RB" {
				t.Errorf("Lookup(%q) = %q, want ULRMC_RB", token, entry.CanonicalName)
			}
		})
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	r := mustBuild(t, testRecords())

	_, err := r.Lookup("ulrmc_rb")
	if err == nil {
		t.Fatal("Lookup(ulrmc_rb) expected NOT_FOUND, matching must stay case-sensitive")
	}
	if !mrcerror.HasCode(err, mrcerror.CodeNotFound) {
		t.Errorf("error code = %v, want %v", mrcerror.GetCode(err), mrcerror.CodeNotFound)
	}
}

func TestLookupExactNoPrefixMatch(t *testing.T) {
	r := mustBuild(t, testRecords())

	// PRESET and PRESET_SA are distinct commands; the shorter token
	// must never resolve to the longer one
	entry, err := r.Lookup("PRESET")
	if err != nil {
		t.Fatalf("Lookup(PRESET) error = %v", err)
	}
	if entry.CanonicalName != "PRESET" {
		t.Errorf("Lookup(PRESET) = %q, want PRESET", entry.CanonicalName)
	}

	entry, err = r.Lookup("PRESETSA")
	if err != nil {
		t.Fatalf("Lookup(PRESETSA) error = %v", err)
	}
	if entry.CanonicalName != "PRESET_SA" {
		t.Errorf("Lookup(PRESETSA) = %q, want PRESET_SA", entry.CanonicalName)
	}
}

func TestLookupNotFound(t *testing.T) {
	r := mustBuild(t, testRecords())

	_, err := r.Lookup("NOSUCHCOMMAND")
	if err == nil {
		t.Fatal("Lookup() expected error for unknown token")
	}
	if !mrcerror.HasCode(err, mrcerror.CodeNotFound) {
		t.Errorf("error code = %v, want %v", mrcerror.GetCode(err), mrcerror.CodeNotFound)
	}
}

func TestLookupEmptyToken(t *testing.T) {
	r := mustBuild(t, testRecords())

	_, err := r.Lookup("   ")
	if err == nil {
		t.Fatal("Lookup() expected error for blank token")
	}
	if !mrcerror.HasCode(err, mrcerror.CodeInvalidInput) {
		t.Errorf("error code = %v, want %v", mrcerror.GetCode(err), mrcerror.CodeInvalidInput)
	}
}

func TestBuildDuplicateName(t *testing.T) {
	records := append(testRecords(), CommandEntry{
		CanonicalName:  "ULRMC RB", // separator variant of an existing name
		SyntaxTemplate: "ULRMC RB <cc>,<rb>",
		Category:       CategoryRMCConfiguration,
	})

	_, err := Build(records, Options{})
	if err == nil {
		t.Fatal("Build() expected DUPLICATE_ENTRY error")
	}
	if !mrcerror.HasCode(err, mrcerror.CodeDuplicateEntry) {
		t.Errorf("error code = %v, want %v", mrcerror.GetCode(err), mrcerror.CodeDuplicateEntry)
	}
}

func TestBuildAliasCollidesWithName(t *testing.T) {
	records := append(testRecords(), CommandEntry{
		CanonicalName:  "NEWCMD",
		SyntaxTemplate: "NEWCMD",
		Category:       CategorySystemControl,
		Aliases:        []Alias{{Name: "OLVL", Provenance: ProvenanceVerified}},
	})

	_, err := Build(records, Options{})
	if err == nil {
		t.Fatal("Build() expected AMBIGUOUS_ALIAS error")
	}
	if !mrcerror.HasCode(err, mrcerror.CodeAmbiguousAlias) {
		t.Errorf("error code = %v, want %v", mrcerror.GetCode(err), mrcerror.CodeAmbiguousAlias)
	}
}

func TestBuildAliasCollidesWithAlias(t *testing.T) {
	records := append(testRecords(), CommandEntry{
		CanonicalName:  "NEWCMD",
		SyntaxTemplate: "NEWCMD",
		Category:       CategorySystemControl,
		Aliases:        []Alias{{Name: "ULRMC R8", Provenance: ProvenanceOCR}},
	})

	_, err := Build(records, Options{})
	if err == nil {
		t.Fatal("Build() expected AMBIGUOUS_ALIAS error for colliding aliases")
	}
	if !mrcerror.HasCode(err, mrcerror.CodeAmbiguousAlias) {
		t.Errorf("error code = %v, want %v", mrcerror.GetCode(err), mrcerror.CodeAmbiguousAlias)
	}
}

func TestBuildNameCollidesWithAlias(t *testing.T) {
	records := append(testRecords(), CommandEntry{
		CanonicalName:  "CALLSTA?", // existing OCR alias of CALLSTAT?
		SyntaxTemplate: "CALLSTA?",
		Category:       CategoryCallProcessing,
	})

	_, err := Build(records, Options{})
	if err == nil {
		t.Fatal("Build() expected AMBIGUOUS_ALIAS error")
	}
	if !mrcerror.HasCode(err, mrcerror.CodeAmbiguousAlias) {
		t.Errorf("error code = %v, want %v", mrcerror.GetCode(err), mrcerror.CodeAmbiguousAlias)
	}
}

func TestBuildUnknownCategory(t *testing.T) {
	records := []CommandEntry{{
		CanonicalName:  "PRESET",
		SyntaxTemplate: "PRESET",
		Category:       Category("Kalibrierung"),
	}}

	_, err := Build(records, Options{})
	if err == nil {
		t.Fatal("Build() expected UNKNOWN_CATEGORY error")
	}
	if !mrcerror.HasCode(err, mrcerror.CodeUnknownCategory) {
		t.Errorf("error code = %v, want %v", mrcerror.GetCode(err), mrcerror.CodeUnknownCategory)
	}
}

func TestBuildEmptyName(t *testing.T) {
	records := []CommandEntry{{
		CanonicalName: "  ",
		Category:      CategorySystemControl,
	}}

	_, err := Build(records, Options{})
	if err == nil {
		t.Fatal("Build() expected validation error for empty name")
	}
	if !mrcerror.HasCode(err, mrcerror.CodeValidationFailed) {
		t.Errorf("error code = %v, want %v", mrcerror.GetCode(err), mrcerror.CodeValidationFailed)
	}
}

func TestBuildDefaultsAliasProvenance(t *testing.T) {
	records := []CommandEntry{{
		CanonicalName:  "SWP",
		SyntaxTemplate: "SWP",
		Category:       CategoryMeasurementControl,
		Aliases:        []Alias{{Name: "SWEEP"}},
	}}

	r := mustBuild(t, records)
	entry, err := r.Lookup("SWP")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if entry.Aliases[0].Provenance != ProvenanceVerified {
		t.Errorf("default provenance = %q, want %q",
			entry.Aliases[0].Provenance, ProvenanceVerified)
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	r := mustBuild(t, testRecords())

	first, err := r.Search("", "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(first) != len(testRecords()) {
		t.Errorf("Search(\"\") returned %d entries, want %d", len(first), len(testRecords()))
	}

	// repeating the search must yield the identical result
	second, err := r.Search("", "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("repeated Search() returned %d entries, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i].CanonicalName != second[i].CanonicalName {
			t.Errorf("result order changed at %d: %q vs %q",
				i, first[i].CanonicalName, second[i].CanonicalName)
		}
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	r := mustBuild(t, testRecords())

	tests := []struct {
		query string
		want  string
	}{
		{"ulrmc", "ULRMC_RB"},
		{"Ulrmc", "ULRMC_RB"},
		{"callstat", "CALLSTAT?"},
		{"output level", "OLVL"}, // description match
		{"ulrmc_r8", "ULRMC_RB"}, // alias match
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			result, err := r.Search(tt.query, "")
			if err != nil {
				t.Fatalf("Search(%q) error = %v", tt.query, err)
			}
			if len(result) != 1 {
				t.Fatalf("Search(%q) returned %d entries, want 1", tt.query, len(result))
			}
			if result[0].CanonicalName != tt.want {
				t.Errorf("Search(%q) = %q, want %q", tt.query, result[0].CanonicalName, tt.want)
			}
		})
	}
}

func TestSearchWithCategory(t *testing.T) {
	r := mustBuild(t, testRecords())

	result, err := r.Search("", CategorySystemControl)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Search(System Control) returned %d entries, want 2", len(result))
	}
	if result[0].CanonicalName != "PRESET" || result[1].CanonicalName != "PRESET_SA" {
		t.Errorf("unexpected order: %q, %q", result[0].CanonicalName, result[1].CanonicalName)
	}

	// query and category combined
	result, err = r.Search("for sa", CategorySystemControl)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result) != 1 || result[0].CanonicalName != "PRESET_SA" {
		t.Errorf("Search(for sa, System Control) = %v", result)
	}
}

func TestSearchUnknownCategory(t *testing.T) {
	r := mustBuild(t, testRecords())

	_, err := r.Search("preset", Category("Unbekannt"))
	if err == nil {
		t.Fatal("Search() expected UNKNOWN_CATEGORY error")
	}
	if !mrcerror.HasCode(err, mrcerror.CodeUnknownCategory) {
		t.Errorf("error code = %v, want %v", mrcerror.GetCode(err), mrcerror.CodeUnknownCategory)
	}
}

func TestSearchNoMatches(t *testing.T) {
	r := mustBuild(t, testRecords())

	result, err := r.Search("zzz-does-not-exist", "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Search() returned %d entries, want 0", len(result))
	}
}

func TestCategoriesFixedOrder(t *testing.T) {
	r := mustBuild(t, testRecords())

	categories := r.Categories()
	if len(categories) != 16 {
		t.Fatalf("Categories() returned %d labels, want 16", len(categories))
	}
	if categories[0] != CategorySystemControl {
		t.Errorf("first category = %q, want %q", categories[0], CategorySystemControl)
	}
	if categories[15] != CategorySpecialized {
		t.Errorf("last category = %q, want %q", categories[15], CategorySpecialized)
	}
}

func TestEntriesSorted(t *testing.T) {
	r := mustBuild(t, testRecords())

	entries := r.Entries()
	if len(entries) != len(testRecords()) {
		t.Fatalf("Entries() returned %d, want %d", len(entries), len(testRecords()))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].CanonicalName >= entries[i].CanonicalName {
			t.Errorf("Entries() not sorted at %d: %q >= %q",
				i, entries[i-1].CanonicalName, entries[i].CanonicalName)
		}
	}
}

func TestIsQuery(t *testing.T) {
	r := mustBuild(t, testRecords())

	entry, _ := r.Lookup("CALLSTAT?")
	if !entry.IsQuery() {
		t.Error("CALLSTAT? should be a query command")
	}
	entry, _ = r.Lookup("OLVL")
	if entry.IsQuery() {
		t.Error("OLVL should not be a query command")
	}
}
