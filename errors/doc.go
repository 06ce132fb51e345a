// Package errors provides structured error types for the gamekit library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, type and file names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConfig, errors.KindInvalidBits).
//		Path("gfx", "Texture").
//		Type("Texture").
//		Detail("index bits exceed the word width").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedWidth(48)
//	err := errors.DecodeFailed(path, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
