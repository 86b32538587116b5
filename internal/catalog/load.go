// File: load.go
// Title: Catalog File Loading
// Description: Decodes catalog TOML files into command records and builds
//              a registry from them.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation

package catalog

import (
	"os"

	"github.com/BurntSushi/toml"

	mrcerror "github.com/msto63/mRC/foundation/core/error"
)

// fileAlias is the TOML shape of an alias record
type fileAlias struct {
	Name       string `toml:"name"`
	Provenance string `toml:"provenance"`
}

// fileCommand is the TOML shape of a command record
type fileCommand struct {
	Name        string      `toml:"name"`
	Syntax      string      `toml:"syntax"`
	Description string      `toml:"description"`
	Category    string      `toml:"category"`
	Aliases     []fileAlias `toml:"aliases"`
	SourceRefs  []string    `toml:"source_refs"`
}

// catalogFile is the TOML shape of a complete catalog
type catalogFile struct {
	Commands []fileCommand `toml:"command"`
}

// Parse decodes catalog TOML data and builds a registry from it
func Parse(data []byte, opts Options) (*Registry, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, mrcerror.Wrap(err, "cannot parse catalog data").
			WithCode(mrcerror.CodeCatalogFormat).
			WithOperation("parse")
	}

	records := make([]CommandEntry, len(file.Commands))
	for i, cmd := range file.Commands {
		aliases := make([]Alias, len(cmd.Aliases))
		for j, a := range cmd.Aliases {
			aliases[j] = Alias{Name: a.Name, Provenance: Provenance(a.Provenance)}
		}
		records[i] = CommandEntry{
			CanonicalName:  cmd.Name,
			Aliases:        aliases,
			SyntaxTemplate: cmd.Syntax,
			Description:    cmd.Description,
			Category:       Category(cmd.Category),
			SourceRefs:     cmd.SourceRefs,
		}
	}

	return Build(records, opts)
}

// LoadFile reads a catalog TOML file and builds a registry from it
func LoadFile(path string, opts Options) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mrcerror.Wrap(err, "cannot read catalog file").
			WithCode(mrcerror.CodeCatalogFormat).
			WithOperation("load").
			WithDetail("file_path", path)
	}
	return Parse(data, opts)
}
