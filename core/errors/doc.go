// Package errors provides the standardized error constructors used by the
// extension packages.
//
// Every package reports failures through the same small taxonomy:
//
//   - invalid argument (CodeInvalidInput): a required input is blank or nil,
//     a size is not positive, an enum name is unknown. Raised before any
//     partial work is done.
//   - not found (CodeNotFound): a lookup failed in strict mode.
//   - format (CodeInvalidFormat): a parse failed where the caller asked for
//     a parsed value. Predicates such as stringx.IsDate never raise it.
//
// Errors carry the module and operation in their details so callers can
// route them without parsing messages:
//
//	if errors.IsNotFound(err) && errors.ExtractModule(err) == errors.ModuleResx {
//		// fall back to a default resource
//	}
package errors
