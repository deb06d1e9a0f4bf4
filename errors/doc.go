// Package errors provides structured error types for the bitpack library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the context needed to diagnose a bad
// layout: the field index, the offending bit counts, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLayout, errors.KindStorageTooNarrow).
//		Bits(72).
//		Limit(64).
//		Detail("custom selector returned u64 for a 72-bit layout").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedWidth(errors.PhaseSelect, 96, 64)
//	err := errors.IndexOutOfRange(errors.PhaseAccess, 3, 2)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
