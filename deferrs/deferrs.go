// Package deferrs defines the sentinel error taxonomy shared by every
// package in this module, mirroring the kind/sentinel convention used by the
// teacher's errs package: exported sentinel values for errors.Is matching,
// wrapped with call-site context via fmt.Errorf("...: %w", ...) where the
// failure needs to carry more than its kind.
package deferrs

import "errors"

// ParseError sentinels: format-string parse failures (spec.md §7).
var (
	ErrUnmatchedOpen           = errors.New("deferrs: unmatched '{'")
	ErrUnmatchedClose          = errors.New("deferrs: unmatched '}'")
	ErrIdentifierEmpty         = errors.New("deferrs: empty identifier")
	ErrIdentifierUnderscore    = errors.New("deferrs: bare underscore is not a valid identifier")
	ErrIdentifierStart         = errors.New("deferrs: invalid identifier start character")
	ErrIdentifierContinue      = errors.New("deferrs: invalid identifier continuation character")
	ErrIdentifierZeroWidth     = errors.New("deferrs: zero-width joiner/non-joiner not allowed in identifier")
	ErrIdentifierRawForbidden  = errors.New("deferrs: raw identifier prefix not allowed in this context")
	ErrIntegerOverflow         = errors.New("deferrs: integer literal overflow")
	ErrCountUnclosedArgument   = errors.New("deferrs: unclosed '$' count argument")
	ErrPrecisionEmpty          = errors.New("deferrs: empty precision specifier")
	ErrFormatTraitUnknown      = errors.New("deferrs: unknown format trait")
)

// ResolverError sentinels (spec.md §4.C).
var (
	ErrInvalidStringPositional = errors.New("deferrs: positional argument index out of range")
	ErrUnusedPositionals       = errors.New("deferrs: unused positional arguments provided")
	ErrUnusedNamed             = errors.New("deferrs: unused named argument provided")
	ErrMissingNamed            = errors.New("deferrs: named argument referenced in format string is missing")
	ErrProvidedDuplicate       = errors.New("deferrs: named argument provided more than once")
)

// DecoderError sentinels (spec.md §4.G). All are non-recoverable for the
// current frame; insufficient bytes is signaled separately by
// decoder.ErrIncomplete.
var (
	ErrUnknownTypeHint             = errors.New("deferrs: unknown type hint")
	ErrUnknownStatementWriterHint  = errors.New("deferrs: unknown statement writer hint")
	ErrInvalidValueBytes           = errors.New("deferrs: invalid raw bytes for value")
	ErrInvalidCharLength           = errors.New("deferrs: invalid char length byte")
	ErrInvalidUTF8Char             = errors.New("deferrs: invalid utf8 char bytes")
	ErrInvalidStringBytes          = errors.New("deferrs: invalid utf8 string bytes")
	ErrLengthOverflow              = errors.New("deferrs: length prefix overflows platform int")
	ErrVariantIndexOverflow        = errors.New("deferrs: enum variant index overflows platform int")
	ErrUnknownVariantIndex         = errors.New("deferrs: enum variant index out of range")
	ErrUnknownCrate                = errors.New("deferrs: unknown crate id")
	ErrUnknownStatement            = errors.New("deferrs: unknown statement id")
	ErrUnknownTypeStructure        = errors.New("deferrs: unknown type structure id")
	ErrUnknownHeader               = errors.New("deferrs: unparseable header byte")
)

// CatalogError sentinels (spec.md §4.F, §7).
var (
	ErrRecordNotFound         = errors.New("deferrs: catalog record not found")
	ErrSchemaVersionMismatch  = errors.New("deferrs: catalog snapshot schema version mismatch")
	ErrCrateAlreadyRegistered = errors.New("deferrs: crate already registered under a different id")
	ErrSnapshotCorrupt        = errors.New("deferrs: catalog snapshot corrupt or truncated")
	ErrTableFull              = errors.New("deferrs: catalog table exhausted its 16-bit id space")
)

// FormatError sentinels (spec.md §4.D, §7).
var (
	ErrUnknownArg           = errors.New("deferrs: unknown format argument")
	ErrInvalidArgType       = errors.New("deferrs: argument has unexpected type for this position")
	ErrUsizeConversion      = errors.New("deferrs: value is not a non-negative integer usable as usize")
	ErrFormatNotImplemented = errors.New("deferrs: format trait not implemented for this type")
)

// DispatchError sentinels (spec.md §4.I).
var (
	ErrAlreadyInitialized = errors.New("deferrs: dispatcher already initialized")
	ErrNotInitialized     = errors.New("deferrs: dispatcher not initialized")
)
