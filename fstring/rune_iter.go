package fstring

// runePos pairs a rune with its byte offset within the source string,
// mirroring Rust's `char_indices` iterator.
type runePos struct {
	idx int
	r   rune
}

// runeIter is a peekable, resumable cursor over a string's runes, used
// throughout this package instead of range loops so that parsing
// subroutines can hand off an in-progress cursor to one another (mirroring
// the chained `parse_from_*` state machine the original parser uses).
type runeIter struct {
	items []runePos
	pos   int
}

func newRuneIter(s string) *runeIter {
	items := make([]runePos, 0, len(s))
	for i, r := range s {
		items = append(items, runePos{idx: i, r: r})
	}

	return &runeIter{items: items}
}

func (it *runeIter) next() (runePos, bool) {
	if it.pos >= len(it.items) {
		return runePos{}, false
	}

	p := it.items[it.pos]
	it.pos++

	return p, true
}

func (it *runeIter) peek() (runePos, bool) {
	if it.pos >= len(it.items) {
		return runePos{}, false
	}

	return it.items[it.pos], true
}

// find consumes runes until pred matches, returning the matching position,
// or consumes the remainder and returns false.
func (it *runeIter) find(pred func(rune) bool) (runePos, bool) {
	for {
		p, ok := it.next()
		if !ok {
			return runePos{}, false
		}

		if pred(p.r) {
			return p, true
		}
	}
}
