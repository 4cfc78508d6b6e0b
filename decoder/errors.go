package decoder

import "errors"

// ErrIncomplete signals that the cursor ran out of bytes before a value
// could be fully decoded. It is not a structural error: the caller should
// Feed more bytes and call Decode again (spec.md §4.G, "insufficient bytes
// is recoverable").
var ErrIncomplete = errors.New("decoder: need more bytes")
