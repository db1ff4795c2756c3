// File: utils_test.go
// Title: Tests for Shared Error Utilities
// Description: Tests for the builder, the standard constructors and the
//              inspection helpers.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-15 v0.2.0: Cover module convenience constructors

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	gaerror "github.com/goldenacre/extensions/core/error"
)

func TestErrorBuilderDefaults(t *testing.T) {
	err := NewErrorBuilder(ModuleSlicex).Operation("batch").Build()

	if err.Error() != "slicex.batch failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != gaerror.Code(CodeOperationFailed) {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Operation() != "batch" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if ExtractModule(err) != ModuleSlicex || ExtractOperation(err) != "batch" {
		t.Errorf("details = %v", err.Details())
	}
}

func TestStandardConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		check     func(error) bool
		module    string
		operation string
		contains  string
	}{
		{
			name:      "invalid input",
			err:       SlicexInvalidSize("batch", 0),
			check:     IsInvalidInput,
			module:    ModuleSlicex,
			operation: "batch",
			contains:  "positive size",
		},
		{
			name:      "resource not found",
			err:       ResxNotFound("get_bytes", "logo.png"),
			check:     IsNotFound,
			module:    ModuleResx,
			operation: "get_bytes",
			contains:  "logo.png",
		},
		{
			name:      "resource name blank",
			err:       ResxInvalidName("get_text", " "),
			check:     IsInvalidInput,
			module:    ModuleResx,
			operation: "get_text",
			contains:  "non-blank",
		},
		{
			name:     "format",
			err:      TimexParseError("31/31/2020", "date"),
			check:    IsInvalidFormat,
			module:   ModuleTimex,
			contains: "expected date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.err) {
				t.Errorf("classifier rejected %v", tt.err)
			}
			if got := ExtractModule(tt.err); got != tt.module {
				t.Errorf("ExtractModule() = %q, want %q", got, tt.module)
			}
			if got := ExtractOperation(tt.err); got != tt.operation {
				t.Errorf("ExtractOperation() = %q, want %q", got, tt.operation)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want substring %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func TestClassifiersSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("cli: %w", ResxNotFound("get_text", "x.txt"))

	if !IsNotFound(err) {
		t.Error("IsNotFound() should unwrap fmt errors")
	}
	if IsInvalidInput(err) {
		t.Error("IsInvalidInput() matched a not found error")
	}
	if !IsModuleOperation(err, ModuleResx, "get_text") {
		t.Error("IsModuleOperation() should match")
	}
}

func TestOperationFailedKeepsCause(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := OperationFailed(ModuleConfig, "load", cause)

	if !stderrors.Is(err, cause) {
		t.Error("cause should be reachable with errors.Is")
	}
	if err.Severity() != gaerror.SeverityHigh {
		t.Errorf("Severity() = %v, want high", err.Severity())
	}
}

func TestForeignErrorsHaveNoModule(t *testing.T) {
	plain := stderrors.New("plain")
	if ExtractModule(plain) != "" || ExtractDetails(plain) != nil {
		t.Error("foreign errors should have no details")
	}
}
