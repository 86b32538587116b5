// File: registry.go
// Title: Immutable Command Registry
// Description: Implements construction of the command registry with
//              duplicate and ambiguity detection, plus lookup, search,
//              and category listing over the immutable result.
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

	mrcerror "github.com/msto63/mRC/foundation/core/error"
	"github.com/msto63/mRC/foundation/core/log"
	mrcstringx "github.com/msto63/mRC/foundation/utils/stringx"
)

// Registry is the immutable command catalog. All maps are fully
// populated during Build and never written afterwards, so a Registry
// may be shared across goroutines without locking.
type Registry struct {
	entries    []*CommandEntry
	byName     map[string]*CommandEntry
	byAlias    map[string]*CommandEntry
	byCategory map[Category][]*CommandEntry
	logger     *log.Logger
}

// Options configures registry construction
type Options struct {
	Logger *log.Logger
}

// Build constructs a registry from the given records. It fails when a
// canonical name is duplicated, when an alias would resolve to two
// different entries, or when a record carries an unknown category or an
// empty name. A failed Build leaves no usable registry behind.
func Build(records []CommandEntry, opts Options) (*Registry, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	logger = logger.WithField("component", "catalog")

	r := &Registry{
		entries:    make([]*CommandEntry, 0, len(records)),
		byName:     make(map[string]*CommandEntry, len(records)),
		byAlias:    make(map[string]*CommandEntry),
		byCategory: make(map[Category][]*CommandEntry),
		logger:     logger,
	}

	for i := range records {
		entry := records[i]
		if err := r.addEntry(&entry); err != nil {
			return nil, err
		}
	}

	sort.Slice(r.entries, func(i, j int) bool {
		return r.entries[i].CanonicalName < r.entries[j].CanonicalName
	})
	for _, list := range r.byCategory {
		sort.Slice(list, func(i, j int) bool {
			return list[i].CanonicalName < list[j].CanonicalName
		})
	}

	logger.Info("command catalog built", log.Fields{
		"commandCount": len(r.entries),
		"aliasCount":   len(r.byAlias),
	})

	return r, nil
}

// addEntry validates and indexes a single record
func (r *Registry) addEntry(entry *CommandEntry) error {
	if mrcstringx.IsBlank(entry.CanonicalName) {
		return mrcerror.New("command name cannot be empty").
			WithCode(mrcerror.CodeValidationFailed).
			WithOperation("build")
	}

	if !entry.Category.IsValid() {
		return mrcerror.New("unknown command category").
			WithCode(mrcerror.CodeUnknownCategory).
			WithOperation("build").
			WithDetail("command", entry.CanonicalName).
			WithDetail("category", string(entry.Category))
	}

	nameKey := normalizeToken(entry.CanonicalName)
	if existing, found := r.byName[nameKey]; found {
		return mrcerror.New("duplicate command name").
			WithCode(mrcerror.CodeDuplicateEntry).
			WithOperation("build").
			WithDetail("command", entry.CanonicalName).
			WithDetail("existing", existing.CanonicalName)
	}
	if existing, found := r.byAlias[nameKey]; found {
		return mrcerror.New("command name collides with an alias of another command").
			WithCode(mrcerror.CodeAmbiguousAlias).
			WithOperation("build").
			WithDetail("command", entry.CanonicalName).
			WithDetail("existing", existing.CanonicalName)
	}

	// work on a private copy so defaults never write into the caller's slice
	if len(entry.Aliases) > 0 {
		aliases := make([]Alias, len(entry.Aliases))
		copy(aliases, entry.Aliases)
		entry.Aliases = aliases
	}

	for i := range entry.Aliases {
		alias := &entry.Aliases[i]
		if mrcstringx.IsBlank(alias.Name) {
			return mrcerror.New("alias name cannot be empty").
				WithCode(mrcerror.CodeValidationFailed).
				WithOperation("build").
				WithDetail("command", entry.CanonicalName)
		}
		if alias.Provenance == "" {
			alias.Provenance = ProvenanceVerified
		}
		if !alias.Provenance.IsValid() {
			return mrcerror.New("unknown alias provenance").
				WithCode(mrcerror.CodeValidationFailed).
				WithOperation("build").
				WithDetail("command", entry.CanonicalName).
				WithDetail("provenance", string(alias.Provenance))
		}
	}

	r.byName[nameKey] = entry
	r.entries = append(r.entries, entry)
	r.byCategory[entry.Category] = append(r.byCategory[entry.Category], entry)

	for _, alias := range entry.Aliases {
		aliasKey := normalizeToken(alias.Name)
		if aliasKey == nameKey {
			// spelling variant of the own name, already covered
			continue
		}
		if existing, found := r.byName[aliasKey]; found && existing != entry {
			return mrcerror.New("alias collides with the name of another command").
				WithCode(mrcerror.CodeAmbiguousAlias).
				WithOperation("build").
				WithDetail("alias", alias.Name).
				WithDetail("command", entry.CanonicalName).
				WithDetail("existing", existing.CanonicalName)
		}
		if existing, found := r.byAlias[aliasKey]; found {
			if existing == entry {
				continue
			}
			return mrcerror.New("alias resolves to two different commands").
				WithCode(mrcerror.CodeAmbiguousAlias).
				WithOperation("build").
				WithDetail("alias", alias.Name).
				WithDetail("command", entry.CanonicalName).
				WithDetail("existing", existing.CanonicalName)
		}
		r.byAlias[aliasKey] = entry
	}

	return nil
}

// Lookup resolves a token to its command entry. Matching is
// case-sensitive but ignores separator spelling; canonical names take
// priority over aliases. Unknown tokens yield a NOT_FOUND error.
func (r *Registry) Lookup(token string) (*CommandEntry, error) {
	key := normalizeToken(token)
	if key == "" {
		return nil, mrcerror.New("command token cannot be empty").
			WithCode(mrcerror.CodeInvalidInput).
			WithOperation("lookup")
	}

	if entry, found := r.byName[key]; found {
		return entry, nil
	}
	if entry, found := r.byAlias[key]; found {
		return entry, nil
	}

	return nil, mrcerror.New("command not found").
		WithCode(mrcerror.CodeNotFound).
		WithOperation("lookup").
		WithDetail("token", token)
}

// Search returns all entries whose canonical name, alias, or
// description contains the query, compared case-insensitively. An
// empty query returns the full catalog. A non-empty category restricts
// the result to that category; an unknown category is an error. The
// result is a fresh slice sorted by canonical name.
func (r *Registry) Search(query string, category Category) ([]*CommandEntry, error) {
	if category != "" && !category.IsValid() {
		return nil, mrcerror.New("unknown command category").
			WithCode(mrcerror.CodeUnknownCategory).
			WithOperation("search").
			WithDetail("category", string(category))
	}

	pool := r.entries
	if category != "" {
		pool = r.byCategory[category]
	}

	needle := foldToken(query)
	result := make([]*CommandEntry, 0, len(pool))
	for _, entry := range pool {
		if needle == "" || entryMatches(entry, needle) {
			result = append(result, entry)
		}
	}

	return result, nil
}

// entryMatches reports whether the folded needle occurs in the entry
func entryMatches(entry *CommandEntry, needle string) bool {
	if strings.Contains(strings.ToLower(entry.CanonicalName), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Description), needle) {
		return true
	}
	for _, alias := range entry.Aliases {
		if strings.Contains(strings.ToLower(alias.Name), needle) {
			return true
		}
	}
	return false
}

// Categories returns the sixteen category labels in their fixed order
func (r *Registry) Categories() []Category {
	result := make([]Category, len(allCategories))
	copy(result, allCategories)
	return result
}

// CategoryCount returns the number of entries in a category
func (r *Registry) CategoryCount(category Category) int {
	return len(r.byCategory[category])
}

// Entries returns all entries sorted by canonical name
func (r *Registry) Entries() []*CommandEntry {
	result := make([]*CommandEntry, len(r.entries))
	copy(result, r.entries)
	return result
}

// Len returns the number of commands in the catalog
func (r *Registry) Len() int {
	return len(r.entries)
}
