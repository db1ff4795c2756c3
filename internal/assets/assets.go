// File: assets.go
// Title: Embedded Default Resources
// Description: Resource files compiled into the goldx binary and the
//              catalog built from them.
// Author: goldenacre
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package assets

import (
	"embed"

	"github.com/goldenacre/extensions/utils/resx"
)

// DefaultsFile is the short name of the embedded default configuration
const DefaultsFile = "goldx.toml"

//go:embed res
var files embed.FS

// Provider returns the embedded files as a catalog whose names start with
// prefix, e.g. "goldx.res.goldx.toml"
func Provider(prefix string) (*resx.FSProvider, error) {
	return resx.NewFSProvider(files, prefix)
}
