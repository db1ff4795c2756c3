// Package error provides the structured error type shared by all goldenacre
// extension packages.
//
// Package: error
// Title: Goldenacre Structured Errors
// Description: Implements an error type carrying a code, a severity, a details
//              map, the failing operation and a captured stack trace. The type
//              is compatible with the standard error interface and with
//              errors.Is/errors.As through Unwrap.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.2.0: Reduced code set to the extension library, added LogString
//
// Usage:
//
//	import gaerror "github.com/goldenacre/extensions/core/error"
//
//	err := gaerror.New("resource not found").
//		WithCode(gaerror.CodeNotFound).
//		WithDetail("name", "tazmania.jpg")
//
//	if gaerror.HasCode(err, gaerror.CodeNotFound) {
//		// handle missing resource
//	}
//
//	// Multi-line diagnostic text for log files
//	fmt.Println(gaerror.LogString(err, "loading splash image", false))
package error
