package fstring

import (
	"github.com/deferfmt/deferfmt/deferrs"
)

const (
	openingBrace = '{'
	closingBrace = '}'
)

// FormatString is a fully parsed format string: literal runs interleaved
// with argument references.
type FormatString struct {
	Segments []Segment
}

// Parse parses str into a FormatString, validating brace matching/escaping,
// argument references, and the options grammar of every `{...}` segment.
func Parse(str string) (*FormatString, error) {
	var segments []Segment

	it := newRuneIter(str)
	lastSegmentEnd := -1 // -1 means "no format segment seen yet"

	for {
		cur, ok := it.next()
		if !ok {
			break
		}

		switch cur.r {
		case openingBrace:
			next, ok := it.next()
			if !ok {
				return nil, deferrs.NewCharParseError(cur.idx, deferrs.ErrUnmatchedOpen)
			}

			if next.r == openingBrace {
				continue
			}

			terminateLiteral(str, &segments, lastSegmentEnd, cur.idx)

			if next.r == closingBrace {
				segments = append(segments, Segment{Kind: SegmentFormat})
				lastSegmentEnd = next.idx + runeLen(next.r)
				continue
			}

			end, ok := it.find(func(r rune) bool { return r == closingBrace })
			if !ok {
				return nil, deferrs.NewCharParseError(cur.idx, deferrs.ErrUnmatchedOpen)
			}

			argSegment, err := parseArgumentSegment(next.idx, str[next.idx:end.idx])
			if err != nil {
				return nil, err
			}

			segments = append(segments, Segment{Kind: SegmentFormat, Format: argSegment})
			lastSegmentEnd = end.idx + runeLen(end.r)

		case closingBrace:
			next, ok := it.next()
			if !ok || next.r != closingBrace {
				return nil, deferrs.NewCharParseError(cur.idx, deferrs.ErrUnmatchedClose)
			}
		}
	}

	if lastSegmentEnd == -1 {
		if str != "" {
			segments = append(segments, Segment{Kind: SegmentLiteral, Literal: Literal(str)})
		}
	} else if lastSegmentEnd != len(str) {
		segments = append(segments, Segment{Kind: SegmentLiteral, Literal: Literal(str[lastSegmentEnd:])})
	}

	return &FormatString{Segments: segments}, nil
}

// terminateLiteral closes out a pending literal run ending just before
// charIdx, skipping the empty-string case so "{}{}" doesn't accumulate
// spurious empty literal segments between format segments.
func terminateLiteral(str string, segments *[]Segment, lastSegmentEnd int, charIdx int) {
	if lastSegmentEnd == -1 {
		if charIdx != 0 {
			*segments = append(*segments, Segment{Kind: SegmentLiteral, Literal: Literal(str[0:charIdx])})
		}

		return
	}

	if len(*segments) == 0 {
		panic("registered last segment end without pushing to segments buffer")
	}

	last := (*segments)[len(*segments)-1]
	if last.Kind == SegmentFormat && lastSegmentEnd != charIdx {
		*segments = append(*segments, Segment{Kind: SegmentLiteral, Literal: Literal(str[lastSegmentEnd:charIdx])})
	}
}

func runeLen(r rune) int {
	if r < 0x80 {
		return 1
	}

	switch {
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
