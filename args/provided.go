package args

import "github.com/deferfmt/deferfmt/fstring"

// NamedArg pairs a provided argument's name with its value.
type NamedArg[E any] struct {
	Name  fstring.Identifier
	Value E
}

// ProvidedArgs is the set of argument values supplied alongside a format
// string, split the way Rust's `format_args!` splits its call site:
// positional values first, named values second.
type ProvidedArgs[E any] struct {
	Positional []E
	Named      []NamedArg[E]
}

// ArgCapturer supplies a value for a named reference that appears in the
// format string but wasn't explicitly provided — the Go analogue of the
// original macro capturing a same-named variable from the call site's
// scope. Registration paths that require every reference to be explicit
// should leave this nil.
type ArgCapturer[E any] interface {
	Capture(name fstring.Identifier) E
}
