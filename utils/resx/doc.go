// Package resx looks up bundled resources by short file name.
//
// Package: resx
// Title: Resource Lookup
// Description: Case-insensitive suffix matching of short names against a
//              catalog of fully qualified resource names, plus loading
//              through a Loader or a Provider built from an fs.FS.
// Author: goldenacre
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation
//
// Usage:
//
//	//go:embed res
//	var files embed.FS
//
//	provider, err := resx.NewFSProvider(files, "app")
//	if err != nil {
//		return err
//	}
//	bundle, _ := resx.NewBundle(provider, true)
//	text, _, err := bundle.Text("defaults.toml") // app.res.defaults.toml
package resx
