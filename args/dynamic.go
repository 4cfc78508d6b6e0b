package args

import (
	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/fstring"
)

// ResolveDynamic validates that a decoded statement's argument counts are
// consistent with its format string, without touching argument identities
// or values: the decode path only ever sees raw wire values in positional
// order, so there is nothing to disambiguate, capture, or compact. Named
// references in the format string are assumed already resolved by the
// static pass that ran at registration time and are not checked here.
//
// positionalCount is the number of positional values present on the wire
// for this statement.
func ResolveDynamic(fs *fstring.FormatString, positionalCount int) error {
	formatArgs := collectArgs(fs)

	used := make(map[int]struct{})
	maxIndex := -1
	for _, arg := range formatArgs {
		if arg.Kind == fstring.ArgumentIndex {
			used[arg.Index] = struct{}{}
			if arg.Index > maxIndex {
				maxIndex = arg.Index
			}
		}
	}

	switch {
	case maxIndex >= positionalCount:
		return deferrs.NewResolverBoundsError(maxIndex, positionalCount)
	case positionalCount > len(used):
		return deferrs.NewResolverCountError(positionalCount - len(used))
	default:
		return nil
	}
}
