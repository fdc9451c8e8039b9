// Package errors provides error handling for confgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging (never printed to users)
//   - Error wrapping and context
//   - Marks, so a one-line message can still be matched with errors.Is
//   - Hints shown with -v
//
// Usage:
//
//	// Create a configuration error that errors.Is recognises
//	return errors.Mark(errors.Newf("%q is not a valid identifier", key), errors.ErrInvalidIdentifier)
//
//	// Wrap with context
//	if err := build(); err != nil {
//	    return errors.Wrapf(err, "module %q", module)
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrDuplicateIdentifier) {
//	    // handle duplicate
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is           = crdb.Is
	IsAny        = crdb.IsAny
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	UnwrapAll    = crdb.UnwrapAll
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Configuration errors. Every one of them aborts generation before any
// artifact is written; they describe a problem in the input file, not a fault
// in confgen.
var (
	// ErrInvalidIdentifier: a key, its name token or a section name is not a bare identifier
	ErrInvalidIdentifier = New("invalid identifier")

	// ErrUnsupportedType: a type hint outside the supported keyword set
	ErrUnsupportedType = New("unsupported type")

	// ErrMalformedKey: a key that splits into zero or more than two tokens
	ErrMalformedKey = New("malformed key")

	// ErrDuplicateIdentifier: two keys of one module resolve to the same identifier
	ErrDuplicateIdentifier = New("duplicate identifier")

	// ErrTypeMismatch: a value that cannot be written as a literal of its type
	ErrTypeMismatch = New("type mismatch")

	// ErrMissingSection: a key that is not inside any section
	ErrMissingSection = New("missing section")

	// ErrNameCollision: two identifiers that a target language would spell the same way
	ErrNameCollision = New("name collision")
)

// inputErrors lists the sentinels that describe a bad input file.
var inputErrors = []error{
	ErrInvalidIdentifier,
	ErrUnsupportedType,
	ErrMalformedKey,
	ErrDuplicateIdentifier,
	ErrTypeMismatch,
	ErrMissingSection,
	ErrNameCollision,
}

// IsInputError reports whether err was caused by the configuration file
// rather than by the environment (I/O, permissions, settings).
func IsInputError(err error) bool {
	return err != nil && IsAny(err, inputErrors...)
}

// Newk creates a one-line error marked with the given kind.
func Newk(kind error, format string, args ...interface{}) error {
	return Mark(Newf(format, args...), kind)
}
