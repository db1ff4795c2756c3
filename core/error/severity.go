// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to rank errors in logs.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-15 v0.2.0: Severity derivation limited to the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers caller mistakes such as invalid arguments
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific rating
	SeverityMedium

	// SeverityHigh covers failures of external collaborators
	SeverityHigh

	// SeverityCritical means the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeConfigError, CodeMissingConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
