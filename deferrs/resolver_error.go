package deferrs

import "fmt"

// ResolverError wraps one of the ResolverError sentinels with the detail
// needed to explain it to a caller (the offending index, name, or count).
type ResolverError struct {
	Kind  error
	Index int
	Name  string
	Count int
}

func (e *ResolverError) Error() string {
	switch e.Kind {
	case ErrInvalidStringPositional:
		return fmt.Sprintf("%v: index %d, %d arguments available", e.Kind, e.Index, e.Count)
	case ErrMissingNamed:
		return fmt.Sprintf("%v: %q", e.Kind, e.Name)
	case ErrUnusedNamed:
		return fmt.Sprintf("%v: %q", e.Kind, e.Name)
	case ErrUnusedPositionals:
		return fmt.Sprintf("%v: %d unused", e.Kind, e.Count)
	default:
		return e.Kind.Error()
	}
}

func (e *ResolverError) Unwrap() error {
	return e.Kind
}

// NewResolverBoundsError reports an indexed reference beyond both the
// positional and named arguments provided.
func NewResolverBoundsError(index, available int) *ResolverError {
	return &ResolverError{Kind: ErrInvalidStringPositional, Index: index, Count: available}
}

// NewResolverNameError reports a named reference with no matching provided
// argument and no capturer to fall back on.
func NewResolverNameError(name string) *ResolverError {
	return &ResolverError{Kind: ErrMissingNamed, Name: name}
}

// NewResolverUnusedNamedError reports a provided named argument that the
// format string never references.
func NewResolverUnusedNamedError(name string) *ResolverError {
	return &ResolverError{Kind: ErrUnusedNamed, Name: name}
}

// NewResolverCountError reports more positional arguments provided than the
// format string references.
func NewResolverCountError(unused int) *ResolverError {
	return &ResolverError{Kind: ErrUnusedPositionals, Count: unused}
}
