// File: entry.go
// Title: Command Catalog Data Model
// Description: Defines the catalog entry, alias, provenance, and category
//              types together with the fixed category order of the
//              MT8000A / MT8821C remote-command set.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial data model

package catalog

import "strings"

// Provenance marks how an alias spelling was obtained
type Provenance string

const (
	// ProvenanceVerified marks spellings confirmed against the
	// instrument documentation
	ProvenanceVerified Provenance = "verified"

	// ProvenanceOCR marks spellings recovered from scanned material
	// that could not be confirmed and may contain recognition errors
	ProvenanceOCR Provenance = "ocr"
)

// IsValid returns true for a known provenance value
func (p Provenance) IsValid() bool {
	return p == ProvenanceVerified || p == ProvenanceOCR
}

// Alias is an alternative spelling for a command together with the
// confidence in that spelling
type Alias struct {
	Name       string
	Provenance Provenance
}

// Category groups commands by instrument function
type Category string

// The sixteen categories of the command set, in presentation order.
const (
	CategorySystemControl      Category = "System Control"
	CategoryRemoteDestination  Category = "Remote Destination"
	CategoryTestInterface      Category = "Test Interface"
	CategoryCellConfiguration  Category = "Cell Configuration"
	CategoryCallProcessing     Category = "Call Processing"
	CategoryLevelFrequency     Category = "Level/Frequency"
	CategoryUEPowerControl     Category = "UE/Power Control"
	CategoryRMCConfiguration   Category = "RMC Configuration"
	CategoryNRDCTarget         Category = "NR-DC Target"
	CategoryMeasurementControl Category = "Measurement Control"
	CategoryMeasSwitches       Category = "Measurement Switches"
	CategoryThroughputConfig   Category = "Throughput Configuration"
	CategoryResultQueries      Category = "Result Queries"
	CategoryPowerTemplate      Category = "Power Template"
	CategoryEIS                Category = "EIS"
	CategorySpecialized        Category = "CSI-RS/SRS/Specialized"
)

// allCategories holds the fixed presentation order
var allCategories = []Category{
	CategorySystemControl,
	CategoryRemoteDestination,
	CategoryTestInterface,
	CategoryCellConfiguration,
	CategoryCallProcessing,
	CategoryLevelFrequency,
	CategoryUEPowerControl,
	CategoryRMCConfiguration,
	CategoryNRDCTarget,
	CategoryMeasurementControl,
	CategoryMeasSwitches,
	CategoryThroughputConfig,
	CategoryResultQueries,
	CategoryPowerTemplate,
	CategoryEIS,
	CategorySpecialized,
}

// IsValid returns true if c is one of the sixteen fixed categories
func (c Category) IsValid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the category label
func (c Category) String() string {
	return string(c)
}

// CommandEntry describes one remote command of the catalog
type CommandEntry struct {
	// CanonicalName is the primary command mnemonic, unique within
	// the catalog (e.g. "ULRMC_RB")
	CanonicalName string

	// Aliases are alternative spellings that resolve to this entry
	Aliases []Alias

	// SyntaxTemplate shows the command with its parameter slots
	// (e.g. "ULRMC_RB <Anzahl RB>")
	SyntaxTemplate string

	// Description explains what the command configures or queries
	Description string

	// Category is one of the sixteen fixed labels
	Category Category

	// SourceRefs points into the source documentation (informational
	// only, never interpreted)
	SourceRefs []string
}

// IsQuery returns true if the command reads a value from the instrument
// rather than setting one
func (e *CommandEntry) IsQuery() bool {
	return strings.HasSuffix(e.CanonicalName, "?")
}

// AliasNames returns the alias spellings without provenance
func (e *CommandEntry) AliasNames() []string {
	if len(e.Aliases) == 0 {
		return nil
	}
	names := make([]string, len(e.Aliases))
	for i, a := range e.Aliases {
		names[i] = a.Name
	}
	return names
}
