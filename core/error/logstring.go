// File: logstring.go
// Title: Error Log String Formatting
// Description: Renders an error chain, its details and captured stack into a
//              multi-line diagnostic text suitable for plain log files.
// Author: goldenacre
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package error

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// LogString creates a multi-line diagnostic text from err.
//
// The text starts with the Go type of err, optionally followed by the current
// time, then the additional message (skipped when blank), one line per error
// in the unwrap chain, the details of the outermost structured error and the
// captured stack trace. Returns "" for a nil error.
func LogString(err error, additional string, includeTime bool) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%T\n", err)
	if includeTime {
		sb.WriteString(time.Now().Format(time.RFC1123))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	if msg := strings.TrimSpace(additional); msg != "" {
		sb.WriteString(msg)
		sb.WriteString("\n\n")
	}

	for current := err; current != nil; current = errors.Unwrap(current) {
		if gaErr, ok := current.(*Error); ok {
			sb.WriteString(gaErr.message)
		} else {
			sb.WriteString(current.Error())
		}
		sb.WriteByte('\n')
	}

	var gaErr *Error
	if !errors.As(err, &gaErr) {
		return strings.TrimSpace(sb.String())
	}

	if len(gaErr.details) > 0 {
		sb.WriteString("Data :\n")
		for _, kv := range sortedDetails(gaErr.details) {
			sb.WriteString(kv)
			sb.WriteByte('\n')
		}
	}

	if len(gaErr.stackTrace) > 0 {
		sb.WriteByte('\n')
		for _, frame := range gaErr.stackTrace {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
	}

	return strings.TrimSpace(sb.String())
}
