// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Error inspection helpers and per-module convenience
//              constructors built on the shared standards.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-15 v0.2.0: Convenience constructors for the extension modules

package errors

import (
	stderrors "errors"

	gaerror "github.com/goldenacre/extensions/core/error"
)

// ExtractDetails extracts all details from a structured error in the chain
func ExtractDetails(err error) map[string]interface{} {
	var gaErr *gaerror.Error
	if stderrors.As(err, &gaErr) {
		return gaErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// IsInvalidInput reports whether err is an invalid argument error
func IsInvalidInput(err error) bool {
	return gaerror.HasCode(err, CodeInvalidInput)
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool {
	return gaerror.HasCode(err, CodeNotFound)
}

// IsInvalidFormat reports whether err is a format error
func IsInvalidFormat(err error) bool {
	return gaerror.HasCode(err, CodeInvalidFormat)
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

func StringxInvalidInput(operation string, input interface{}, expected string) *gaerror.Error {
	return InvalidInput(ModuleStringx, operation, input, expected)
}

func TimexParseError(input, expectedFormat string) *gaerror.Error {
	return InvalidFormat(ModuleTimex, input, expectedFormat)
}

func SlicexNilSequence(operation string) *gaerror.Error {
	return InvalidInput(ModuleSlicex, operation, nil, "non-nil sequence")
}

func SlicexNilFunction(operation string) *gaerror.Error {
	return InvalidInput(ModuleSlicex, operation, nil, "non-nil function")
}

func SlicexInvalidSize(operation string, size int) *gaerror.Error {
	return InvalidInput(ModuleSlicex, operation, size, "positive size")
}

func ResxInvalidName(operation, name string) *gaerror.Error {
	return InvalidInput(ModuleResx, operation, name, "non-blank resource file name")
}

func ResxNotFound(operation, name string) *gaerror.Error {
	return NotFound(ModuleResx, operation, name)
}

func ConfigInvalid(key string, value interface{}, expected string) *gaerror.Error {
	return InvalidInput(ModuleConfig, key, value, expected)
}
