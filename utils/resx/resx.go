// File: resx.go
// Title: Resource Lookup by Suffix
// Description: Resolves short file names against a catalog of fully
//              qualified resource names and loads their content as bytes
//              or decoded text.
// Author: goldenacre
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package resx

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/goldenacre/extensions/core/errors"
)

// Loader returns the content of a fully qualified resource name
type Loader func(name string) ([]byte, error)

// FindResourceName returns the first catalog entry that ends with
// "." + shortName, ignoring case. Surrounding whitespace in shortName is
// ignored and a blank shortName never matches.
// Example: ["App.res.tazmania.jpg"], "TAZMANIA.JPG" -> "App.res.tazmania.jpg"
func FindResourceName(catalog []string, shortName string) (string, bool) {
	shortName = strings.TrimSpace(shortName)
	if shortName == "" {
		return "", false
	}

	suffix := "." + shortName
	for _, name := range catalog {
		if hasSuffixFold(name, suffix) {
			return name, true
		}
	}
	return "", false
}

// GetResourceBytes resolves shortName in catalog and loads it.
//
// The bool result reports whether the resource was found. A blank or
// unresolved name is reported as absent, or as an error when strict is set.
// Errors returned by load are passed through unchanged.
func GetResourceBytes(catalog []string, load Loader, shortName string, strict bool) ([]byte, bool, error) {
	if load == nil {
		return nil, false, errors.InvalidInput(errors.ModuleResx, "get_resource_bytes", nil, "non-nil loader")
	}

	if strings.TrimSpace(shortName) == "" {
		if strict {
			return nil, false, errors.ResxInvalidName("get_resource_bytes", shortName)
		}
		return nil, false, nil
	}

	name, ok := FindResourceName(catalog, shortName)
	if !ok {
		if strict {
			return nil, false, errors.ResxNotFound("get_resource_bytes", shortName)
		}
		return nil, false, nil
	}

	data, err := load(name)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// GetResourceText is GetResourceBytes followed by text decoding. A UTF-8 or
// UTF-16 byte order mark selects the encoding and is dropped; without one
// the content is read as UTF-8.
func GetResourceText(catalog []string, load Loader, shortName string, strict bool) (string, bool, error) {
	data, ok, err := GetResourceBytes(catalog, load, shortName, strict)
	if err != nil || !ok {
		return "", ok, err
	}

	text, err := DecodeText(data)
	if err != nil {
		return "", false, errors.OperationFailed(errors.ModuleResx, "get_resource_text", err)
	}
	return text, true, nil
}

// DecodeText turns resource content into a string, honouring a leading
// byte order mark. Invalid sequences become U+FFFD.
func DecodeText(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(out), "\uFFFD"), nil
}

func hasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
