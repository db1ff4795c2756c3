// File: provider.go
// Title: Resource Providers
// Description: Catalog providers over fs.FS trees (embed.FS, os.DirFS) and a
//              Bundle that combines a provider with the lookup functions.
// Author: goldenacre
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package resx

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/goldenacre/extensions/core/errors"
	"github.com/goldenacre/extensions/core/log"
)

// Provider supplies a resource catalog and the content behind it
type Provider interface {
	// ResourceNames returns the fully qualified names in a stable order
	ResourceNames() []string

	// Load returns the content of a fully qualified name
	Load(name string) ([]byte, error)
}

// FSProvider exposes the regular files of an fs.FS as dotted resource
// names: with prefix "App" the file res/tazmania.jpg becomes
// "App.res.tazmania.jpg".
type FSProvider struct {
	fsys  fs.FS
	names []string
	paths map[string]string
}

// NewFSProvider walks fsys once and builds the catalog. Names follow the
// lexical walk order of fs.WalkDir.
func NewFSProvider(fsys fs.FS, prefix string) (*FSProvider, error) {
	if fsys == nil {
		return nil, errors.InvalidInput(errors.ModuleResx, "new_fs_provider", nil, "non-nil file system")
	}

	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	p := &FSProvider{fsys: fsys, paths: make(map[string]string)}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name := strings.ReplaceAll(path, "/", ".")
		if prefix != "" {
			name = prefix + "." + name
		}
		p.names = append(p.names, name)
		p.paths[name] = path
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during resource walk: %w", err)
	}

	return p, nil
}

// ResourceNames returns a copy of the catalog
func (p *FSProvider) ResourceNames() []string {
	return append([]string(nil), p.names...)
}

// Load reads the file behind a catalog name
func (p *FSProvider) Load(name string) ([]byte, error) {
	path, ok := p.paths[name]
	if !ok {
		return nil, errors.ResxNotFound("load", name)
	}
	return fs.ReadFile(p.fsys, path)
}

// Bundle resolves short names against a provider
type Bundle struct {
	provider Provider
	strict   bool
	logger   *log.Logger
}

// NewBundle creates a bundle over provider. In strict mode blank and
// unresolved names are errors instead of absent results.
func NewBundle(provider Provider, strict bool) (*Bundle, error) {
	if provider == nil {
		return nil, errors.InvalidInput(errors.ModuleResx, "new_bundle", nil, "non-nil provider")
	}
	return &Bundle{provider: provider, strict: strict, logger: log.Nop()}, nil
}

// WithLogger returns a copy of the bundle that logs lookups at debug level
func (b *Bundle) WithLogger(logger *log.Logger) *Bundle {
	clone := *b
	if logger == nil {
		logger = log.Nop()
	}
	clone.logger = logger.WithField("component", "resx")
	return &clone
}

// Names returns the provider's catalog
func (b *Bundle) Names() []string {
	return b.provider.ResourceNames()
}

// Find resolves shortName to a fully qualified name
func (b *Bundle) Find(shortName string) (string, bool) {
	name, ok := FindResourceName(b.provider.ResourceNames(), shortName)
	b.logger.Debug("resource lookup", log.Fields{
		"short_name": shortName,
		"resource":   name,
		"found":      ok,
	})
	return name, ok
}

// Bytes loads the resource matching shortName
func (b *Bundle) Bytes(shortName string) ([]byte, bool, error) {
	data, ok, err := GetResourceBytes(b.provider.ResourceNames(), b.provider.Load, shortName, b.strict)
	b.logResult(shortName, len(data), ok, err)
	return data, ok, err
}

// Text loads the resource matching shortName as text
func (b *Bundle) Text(shortName string) (string, bool, error) {
	text, ok, err := GetResourceText(b.provider.ResourceNames(), b.provider.Load, shortName, b.strict)
	b.logResult(shortName, len(text), ok, err)
	return text, ok, err
}

func (b *Bundle) logResult(shortName string, size int, ok bool, err error) {
	if err != nil {
		b.logger.Debug("resource load failed", log.String("short_name", shortName), log.Err(err))
		return
	}
	b.logger.Debug("resource load", log.Fields{
		"short_name": shortName,
		"found":      ok,
		"size":       size,
	})
}
