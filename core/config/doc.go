// Package config provides configuration loading for the goldenacre extension
// packages and the goldx CLI.
//
// Package: config
// Title: Goldenacre Configuration Management
// Description: Loads TOML and YAML configuration from files or strings,
//              resolves dotted keys, applies environment overrides and exposes
//              a typed Settings view.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Settings view, Merge, removed watching and validation rules
//
// Usage:
//
//	cfg, err := config.Load("goldx.toml")
//	if err != nil {
//		return err
//	}
//
//	// GOLDX_TEXT_CULTURE overrides text.culture
//	cfg = cfg.WithEnvPrefix(config.DefaultEnvPrefix)
//
//	settings, err := config.SettingsFrom(cfg)
package config
