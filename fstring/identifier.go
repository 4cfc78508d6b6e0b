package fstring

import (
	"unicode"

	"github.com/deferfmt/deferfmt/deferrs"
)

const rawIdentPrefix = "r#"

const (
	zeroWidthNonJoiner = '‌'
	zeroWidthJoiner    = '‍'
)

// isIdentStart approximates Unicode's XID_Start property with the letter
// class plus underscore. The full XID tables aren't available anywhere in
// this module's dependency set, so identifiers are validated against this
// narrower, ASCII-and-common-script-friendly rule instead (see DESIGN.md).
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isIdentContinue approximates XID_Continue: letters, digits, and underscore.
func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// assertIdentChars validates an identifier's characters, reporting a
// *deferrs.ParseError anchored at offset+charIndex on failure.
func assertIdentChars(offset int, ident string) error {
	it := newRuneIter(ident)

	first, ok := it.next()
	if !ok {
		panic("assertIdentChars called with an empty string")
	}

	switch {
	case first.r == '_' && len([]rune(ident)) == 1:
		return deferrs.NewCharParseError(offset, deferrs.ErrIdentifierUnderscore)
	case first.r == zeroWidthJoiner || first.r == zeroWidthNonJoiner:
		return deferrs.NewCharParseError(offset, deferrs.ErrIdentifierZeroWidth)
	case !isIdentStart(first.r):
		return deferrs.NewCharParseError(offset, deferrs.ErrIdentifierStart)
	}

	for {
		next, ok := it.next()
		if !ok {
			break
		}

		switch {
		case next.r == zeroWidthJoiner || next.r == zeroWidthNonJoiner:
			return deferrs.NewCharParseError(offset+next.idx, deferrs.ErrIdentifierZeroWidth)
		case !isIdentContinue(next.r):
			return deferrs.NewCharParseError(offset+next.idx, deferrs.ErrIdentifierContinue)
		}
	}

	return nil
}

// Identifier is a validated, non-raw argument name: a named format argument
// reference, or the name half of a width/precision count argument.
type Identifier string

// ParseIdentifier validates str as a standalone identifier, rejecting the
// empty string, the raw `r#` prefix (not allowed for format arguments), and
// any non-identifier character.
func ParseIdentifier(str string) (Identifier, error) {
	if str == "" {
		return "", deferrs.NewParseError(0, 0, deferrs.ErrIdentifierEmpty)
	}

	return parseIdentifier(0, str)
}

// parseIdentifier is the internal entry point used while parsing a larger
// format string, where offset locates str within the original source.
func parseIdentifier(offset int, str string) (Identifier, error) {
	if len(str) >= len(rawIdentPrefix) && str[:len(rawIdentPrefix)] == rawIdentPrefix {
		return "", deferrs.NewParseError(offset, offset+len(rawIdentPrefix), deferrs.ErrIdentifierRawForbidden)
	}

	if err := assertIdentChars(offset, str); err != nil {
		return "", err
	}

	return Identifier(str), nil
}
