package fstring

import (
	"github.com/deferfmt/deferfmt/deferrs"
)

// Alignment is the `<`/`^`/`>` fill-alignment directive.
// https://doc.rust-lang.org/std/fmt/index.html#fillalignment
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func alignmentFromRune(r rune) (Alignment, bool) {
	switch r {
	case '<':
		return AlignLeft, true
	case '^':
		return AlignCenter, true
	case '>':
		return AlignRight, true
	default:
		return 0, false
	}
}

// Align pairs an Alignment with an optional fill character.
type Align struct {
	Alignment Alignment
	Fill      rune
	HasFill   bool
}

// Sign forces a `+` or `-` sign on numeric output.
// https://doc.rust-lang.org/std/fmt/index.html#sign0
type Sign uint8

const (
	SignNone Sign = iota
	SignPlus
	SignMinus
)

// FormatTrait selects which Rust-style formatting trait renders the value.
// https://doc.rust-lang.org/std/fmt/index.html#formatting-traits
type FormatTrait uint8

const (
	TraitDisplay FormatTrait = iota
	TraitDebug
	TraitDebugLowerHex
	TraitDebugUpperHex
	TraitOctal
	TraitLowerHex
	TraitUpperHex
	TraitPointer
	TraitBinary
	TraitLowerExp
	TraitUpperExp
)

func parseFormatTrait(offset int, str string) (FormatTrait, error) {
	switch str {
	case "?":
		return TraitDebug, nil
	case "x?":
		return TraitDebugLowerHex, nil
	case "X?":
		return TraitDebugUpperHex, nil
	case "o":
		return TraitOctal, nil
	case "x":
		return TraitLowerHex, nil
	case "X":
		return TraitUpperHex, nil
	case "p":
		return TraitPointer, nil
	case "b":
		return TraitBinary, nil
	case "e":
		return TraitLowerExp, nil
	case "E":
		return TraitUpperExp, nil
	default:
		return 0, deferrs.NewParseError(offset, offset+len(str), deferrs.ErrFormatTraitUnknown)
	}
}

// CountKind discriminates a literal width/precision count from one supplied
// by another argument at decode time.
type CountKind uint8

const (
	CountInteger CountKind = iota
	CountArgument
)

// Count is a width or precision value: either a literal integer or a
// reference to another argument (`3$`, `x$`).
type Count struct {
	Kind     CountKind
	Integer  int
	Argument Argument
}

// PrecisionKind discriminates `.N`/`.N$`/`.name$` from the bare `.*` form.
type PrecisionKind uint8

const (
	PrecisionCount PrecisionKind = iota
	PrecisionNextArgument
)

// Precision is the `.`-introduced precision specifier.
type Precision struct {
	Kind  PrecisionKind
	Count Count
}

// Options is the full `{:...}` options grammar for one format segment, in
// the order it appears on the wire: align, sign, alternate form, zero
// padding, width, precision, format trait.
type Options struct {
	Align            *Align
	Sign             Sign
	UseAlternateForm bool
	UseZeroPadding   bool
	Width            *Count
	Precision        *Precision
	FormatTrait      FormatTrait
}

// parseOptions parses the substring of a format segment following its `:`
// (exclusive of the colon), which the caller has already trimmed of
// trailing whitespace.
func parseOptions(offset int, str string) (Options, error) {
	var opts Options

	it := newRuneIter(str)

	if err := parseFromAlign(offset, str, it, &opts); err != nil {
		return Options{}, err
	}

	return opts, nil
}

func parseFromAlign(offset int, initial string, it *runeIter, opts *Options) error {
	cur, ok := it.next()
	if !ok {
		return nil
	}

	if alignment, ok := alignmentFromRune(cur.r); ok {
		opts.Align = &Align{Alignment: alignment}
		return parseFromSign(nil, offset, initial, it, opts)
	}

	if peeked, ok := it.peek(); ok {
		if alignment, ok := alignmentFromRune(peeked.r); ok {
			opts.Align = &Align{Alignment: alignment, Fill: cur.r, HasFill: true}
			it.next()
			return parseFromSign(nil, offset, initial, it, opts)
		}
	}

	return parseFromSign(&cur, offset, initial, it, opts)
}

func parseFromSign(prev *runePos, offset int, initial string, it *runeIter, opts *Options) error {
	cur, ok := nextOrPrev(prev, it)
	if !ok {
		return nil
	}

	switch cur.r {
	case '+':
		opts.Sign = SignPlus
	case '-':
		opts.Sign = SignMinus
	}

	var carry *runePos
	if opts.Sign == SignNone {
		carry = &cur
	}

	return parseFromAlternateForm(carry, offset, initial, it, opts)
}

func parseFromAlternateForm(prev *runePos, offset int, initial string, it *runeIter, opts *Options) error {
	cur, ok := nextOrPrev(prev, it)
	if !ok {
		return nil
	}

	if cur.r == '#' {
		opts.UseAlternateForm = true
	}

	var carry *runePos
	if !opts.UseAlternateForm {
		carry = &cur
	}

	return parseFromZeroPadding(carry, offset, initial, it, opts)
}

func parseFromZeroPadding(prev *runePos, offset int, initial string, it *runeIter, opts *Options) error {
	cur, ok := nextOrPrev(prev, it)
	if !ok {
		return nil
	}

	if cur.r == '0' {
		opts.UseZeroPadding = true
	}

	var carry *runePos
	if !opts.UseZeroPadding {
		carry = &cur
	}

	return parseFromWidth(carry, offset, initial, it, opts)
}

func parseFromWidth(prev *runePos, offset int, initial string, it *runeIter, opts *Options) error {
	cur, ok := nextOrPrev(prev, it)
	if !ok {
		return nil
	}

	hasWidthArg := hasWidthCountArgument(initial)

	switch {
	case hasWidthArg && cur.r == '$' && opts.UseZeroPadding:
		opts.UseZeroPadding = false
		opts.Width = &Count{Kind: CountArgument, Argument: indexArgument(0)}
	case isASCIIDigit(cur.r) || hasWidthArg:
		count, err := parseCount(offset, cur, initial, it)
		if err != nil {
			return err
		}

		opts.Width = &count
	}

	var carry *runePos
	if opts.Width == nil {
		carry = &cur
	}

	return parseFromPrecision(carry, offset, initial, it, opts)
}

// hasWidthCountArgument reports whether a `$`-introduced width-count
// argument appears before any precision `.`, matching the original
// disambiguation between "0" as zero-padding and "0$" as a width argument.
func hasWidthCountArgument(str string) bool {
	dollar := -1
	dot := -1

	for i, r := range str {
		if r == '$' && dollar == -1 {
			dollar = i
		}

		if r == '.' && dot == -1 {
			dot = i
		}
	}

	switch {
	case dollar >= 0 && dot >= 0:
		return dollar < dot
	case dollar >= 0:
		return true
	default:
		return false
	}
}

func parseFromPrecision(prev *runePos, offset int, initial string, it *runeIter, opts *Options) error {
	cur, ok := nextOrPrev(prev, it)
	if !ok {
		return nil
	}

	if cur.r == '.' {
		precision, err := parsePrecision(offset, cur.idx, initial, it)
		if err != nil {
			return err
		}

		opts.Precision = &precision
	}

	var carry *runePos
	if opts.Precision == nil {
		carry = &cur
	}

	return parseFromFormatTrait(carry, initial, it, opts)
}

func parsePrecision(offset int, dotIdx int, initial string, it *runeIter) (Precision, error) {
	first, ok := it.next()
	if !ok {
		return Precision{}, deferrs.NewCharParseError(offset+dotIdx, deferrs.ErrPrecisionEmpty)
	}

	if first.r == '*' {
		return Precision{Kind: PrecisionNextArgument}, nil
	}

	count, err := parseCount(offset, first, initial, it)
	if err != nil {
		return Precision{}, err
	}

	return Precision{Kind: PrecisionCount, Count: count}, nil
}

func parseFromFormatTrait(prev *runePos, initial string, it *runeIter, opts *Options) error {
	cur, ok := nextOrPrev(prev, it)
	if !ok {
		return nil
	}

	traitStr := initial[cur.idx:]

	formatTrait, err := parseFormatTrait(cur.idx, traitStr)
	if err != nil {
		return err
	}

	opts.FormatTrait = formatTrait

	return nil
}

// parseCount parses a width/precision count starting at firstChar: a run of
// ASCII digits (optionally `$`-suffixed into an index argument), or an
// identifier followed by a mandatory `$` into a named argument.
func parseCount(offset int, firstChar runePos, initial string, it *runeIter) (Count, error) {
	if isASCIIDigit(firstChar.r) {
		number := int(firstChar.r - '0')

		for {
			peeked, ok := it.peek()
			if !ok {
				break
			}

			if isASCIIDigit(peeked.r) {
				number = number*10 + int(peeked.r-'0')
				it.next()
				continue
			}

			if peeked.r == '$' {
				it.next()
				return Count{Kind: CountArgument, Argument: indexArgument(number)}, nil
			}

			break
		}

		return Count{Kind: CountInteger, Integer: number}, nil
	}

	end, ok := it.find(func(r rune) bool { return r == '$' })
	if !ok {
		return Count{}, deferrs.NewParseError(offset+firstChar.idx, offset+len(initial), deferrs.ErrCountUnclosedArgument)
	}

	identStr := initial[firstChar.idx:end.idx]

	ident, err := parseIdentifier(firstChar.idx, identStr)
	if err != nil {
		return Count{}, err
	}

	return Count{Kind: CountArgument, Argument: namedArgument(ident)}, nil
}

func nextOrPrev(prev *runePos, it *runeIter) (runePos, bool) {
	if prev != nil {
		return *prev, true
	}

	return it.next()
}
