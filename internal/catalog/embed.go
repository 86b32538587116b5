// File: embed.go
// Title: Embedded Default Catalog
// Description: Embeds the default MT8000A / MT8821C command catalog and
//              exposes it as a lazily built shared registry.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation

package catalog

import (
	_ "embed"
	"sync"
)

//go:embed data/commands.toml
var defaultCatalogData []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry built from the embedded catalog. The
// registry is built on first use and shared afterwards; the embedded
// data is curated, so an error here means a broken build.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = Parse(defaultCatalogData, Options{})
	})
	return defaultRegistry, defaultErr
}
