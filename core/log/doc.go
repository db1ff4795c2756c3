// Package log provides structured logging for the goldenacre extension packages.
//
// Package: log
// Title: Goldenacre Structured Logging
// Description: Implements a small structured logger with levels, persistent
//              fields, JSON or text output and integration with the structured
//              error type from core/error.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-15 v0.2.0: Synchronous writer only, removed audit and timers
//
// Features:
// - JSON and text formats
// - Level filtering
// - Persistent fields through WithField and WithFields
// - Severity-aware logging of *gaerror.Error values
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatText).
//		WithField("component", "resx")
//
//	logger.Debug("resource resolved", log.String("name", "tazmania.jpg"))
//	logger.LogError(err)
package log
