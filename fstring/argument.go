package fstring

import (
	"strconv"

	"github.com/deferfmt/deferfmt/deferrs"
)

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ArgumentKind discriminates the two ways a format segment can reference a
// provided value.
type ArgumentKind uint8

const (
	ArgumentIndex ArgumentKind = iota
	ArgumentName
)

// Argument is either a positional index (explicit, e.g. `{0}`) or a named
// reference (e.g. `{x}`). The resolver (package args) later folds bare
// unnamed references (`{}`) into sequential Index arguments.
type Argument struct {
	Kind  ArgumentKind
	Index int
	Name  Identifier
}

func indexArgument(i int) Argument { return Argument{Kind: ArgumentIndex, Index: i} }
func namedArgument(name Identifier) Argument {
	return Argument{Kind: ArgumentName, Name: name}
}

// parseArgument parses a non-empty argument reference: a run of ASCII
// digits becomes an Index, anything else is validated as an Identifier.
func parseArgument(offset int, str string) (Argument, error) {
	first, _ := newRuneIter(str).next()

	if isASCIIDigit(first.r) {
		n, err := parseUnsignedInt(offset, str)
		if err != nil {
			return Argument{}, err
		}

		return indexArgument(n), nil
	}

	ident, err := parseIdentifier(offset, str)
	if err != nil {
		return Argument{}, err
	}

	return namedArgument(ident), nil
}

// parseUnsignedInt parses a decimal literal, reporting ErrIntegerOverflow if
// it doesn't fit in a platform int.
func parseUnsignedInt(offset int, str string) (int, error) {
	n, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, deferrs.NewParseError(offset, offset+len(str), deferrs.ErrIntegerOverflow)
	}

	if n > uint64(^uint(0)>>1) {
		return 0, deferrs.NewParseError(offset, offset+len(str), deferrs.ErrIntegerOverflow)
	}

	return int(n), nil
}
