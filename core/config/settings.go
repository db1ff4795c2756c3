// File: settings.go
// Title: Typed Settings
// Description: Typed view over the configuration keys used by the extension
//              packages and the goldx CLI.
// Author: goldenacre
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package config

import (
	"strings"

	"github.com/goldenacre/extensions/core/log"
)

// Configuration keys
const (
	KeyCulture        = "text.culture"
	KeyTruthyWords    = "text.truthy_words"
	KeyPascalIgnore   = "text.pascal_ignore"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyResourcePrefix = "resources.prefix"
)

// Settings holds the typed values read from a Config. ResourcePrefix is the
// first segment of resource catalog names built from a directory tree.
type Settings struct {
	Culture        string
	TruthyWords    []string
	PascalIgnore   []string
	LogLevel       log.Level
	LogFormat      log.Format
	ResourcePrefix string
}

// DefaultSettings returns the settings used when no configuration is present
func DefaultSettings() Settings {
	return Settings{
		Culture:        "en",
		TruthyWords:    []string{"true", "yes", "y", "1", "on"},
		LogLevel:       log.LevelWarn,
		LogFormat:      log.FormatText,
		ResourcePrefix: "goldx",
	}
}

// SettingsFrom reads Settings from c, falling back to DefaultSettings for
// absent keys. Invalid log level or format values are reported.
func SettingsFrom(c *Config) (Settings, error) {
	s := DefaultSettings()
	if c == nil {
		return s, nil
	}

	s.Culture = c.GetString(KeyCulture, s.Culture)
	s.TruthyWords = normalizeWords(c.GetStringSlice(KeyTruthyWords, s.TruthyWords))
	s.PascalIgnore = c.GetStringSlice(KeyPascalIgnore, s.PascalIgnore)
	s.ResourcePrefix = c.GetString(KeyResourcePrefix, s.ResourcePrefix)

	if raw := c.GetString(KeyLogLevel); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			return s, err
		}
		s.LogLevel = level
	}

	if raw := c.GetString(KeyLogFormat); raw != "" {
		format, err := log.ParseFormat(raw)
		if err != nil {
			return s, err
		}
		s.LogFormat = format
	}

	return s, nil
}

// Logger builds a logger from the log settings
func (s Settings) Logger(name string) *log.Logger {
	return log.NewWithConfig(log.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Name:   name,
	})
}

func normalizeWords(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			result = append(result, w)
		}
	}
	return result
}
