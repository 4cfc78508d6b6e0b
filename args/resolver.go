package args

import (
	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/fstring"
)

// ResolverConfig configures the static resolver. The zero value runs every
// check and capturing is disabled.
type ResolverConfig[E any] struct {
	ArgCapturer                  ArgCapturer[E]
	DisableUnusedNamedCheck      bool
	DisableUnusedPositionalCheck bool
	DisableCompaction            bool
}

// Resolve validates and normalizes fs's argument references against
// provided, in place:
//
//  1. every `{}`/`.{*}` reference is disambiguated into a concrete index or
//     identifier;
//  2. indexed references beyond the positional count are remapped onto the
//     named arguments that follow them (spec.md's "index overflow maps to
//     named" rule);
//  3. unused positional/named arguments are rejected, unless disabled;
//  4. provided arguments with equal values are merged onto one another
//     (compaction), unless disabled;
//  5. named arguments whose value equals a positional argument's replace
//     that positional reference.
func Resolve[E comparable](fs *fstring.FormatString, provided *ProvidedArgs[E], cfg ResolverConfig[E]) error {
	formatArgs := collectArgs(fs)

	providedNamed := make(map[fstring.Identifier]struct{}, len(provided.Named))
	for _, na := range provided.Named {
		providedNamed[na.Name] = struct{}{}
	}

	if err := captureAndValidate(formatArgs, provided, cfg, providedNamed); err != nil {
		return err
	}

	if !cfg.DisableUnusedNamedCheck {
		if err := checkUnusedNamed(formatArgs, providedNamed); err != nil {
			return err
		}
	}

	if !cfg.DisableUnusedPositionalCheck {
		if err := checkUnusedPositionals(formatArgs, provided); err != nil {
			return err
		}
	}

	if !cfg.DisableCompaction {
		mergeNamed(formatArgs, provided)
		mergePositional(formatArgs, provided)
		reuseNamedInPositional(formatArgs, provided)
	}

	return nil
}

func captureAndValidate[E any](
	formatArgs []*fstring.Argument,
	provided *ProvidedArgs[E],
	cfg ResolverConfig[E],
	providedNamed map[fstring.Identifier]struct{},
) error {
	for _, arg := range formatArgs {
		switch arg.Kind {
		case fstring.ArgumentIndex:
			positionalLen := len(provided.Positional)
			if arg.Index >= positionalLen {
				namedIdx := arg.Index - positionalLen
				if namedIdx >= len(provided.Named) {
					return deferrs.NewResolverBoundsError(arg.Index, positionalLen+len(provided.Named))
				}

				*arg = namedArgument(provided.Named[namedIdx].Name)
			}

		case fstring.ArgumentName:
			if _, ok := providedNamed[arg.Name]; !ok {
				if cfg.ArgCapturer == nil {
					return deferrs.NewResolverNameError(string(arg.Name))
				}

				value := cfg.ArgCapturer.Capture(arg.Name)
				provided.Named = append(provided.Named, NamedArg[E]{Name: arg.Name, Value: value})
				providedNamed[arg.Name] = struct{}{}
			}
		}
	}

	return nil
}

func checkUnusedNamed(formatArgs []*fstring.Argument, providedNamed map[fstring.Identifier]struct{}) error {
	used := make(map[fstring.Identifier]struct{}, len(formatArgs))
	for _, arg := range formatArgs {
		if arg.Kind == fstring.ArgumentName {
			used[arg.Name] = struct{}{}
		}
	}

	for name := range providedNamed {
		if _, ok := used[name]; !ok {
			return deferrs.NewResolverUnusedNamedError(string(name))
		}
	}

	return nil
}

func checkUnusedPositionals[E any](formatArgs []*fstring.Argument, provided *ProvidedArgs[E]) error {
	used := make(map[int]struct{})
	for _, arg := range formatArgs {
		if arg.Kind == fstring.ArgumentIndex {
			used[arg.Index] = struct{}{}
		}
	}

	unused := 0
	for i := range provided.Positional {
		if _, ok := used[i]; !ok {
			unused++
		}
	}

	if unused > 0 {
		return deferrs.NewResolverCountError(unused)
	}

	return nil
}

// reversedCombinations yields every unique index pair (i, j) with i > j,
// ordered by decreasing j and, within one j, decreasing i — so a caller can
// swap-remove index i mid-iteration: the last element moved into slot i has
// already been paired with j and every higher index.
func reversedCombinations(length int) [][2]int {
	var pairs [][2]int
	for j := 0; j < length; j++ {
		for i := j + 1; i < length; i++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}

	return pairs
}

func swapRemovePositional[E any](s []E, i int) []E {
	s[i] = s[len(s)-1]
	return s[:len(s)-1]
}

func swapRemoveNamed[E any](s []NamedArg[E], i int) []NamedArg[E] {
	s[i] = s[len(s)-1]
	return s[:len(s)-1]
}

func mergePositional[E comparable](formatArgs []*fstring.Argument, provided *ProvidedArgs[E]) {
	for _, pair := range reversedCombinations(len(provided.Positional)) {
		i, j := pair[0], pair[1]
		if i >= len(provided.Positional) {
			continue // removed by an earlier iteration
		}

		if provided.Positional[i] == provided.Positional[j] {
			last := len(provided.Positional) - 1
			provided.Positional = swapRemovePositional(provided.Positional, i)

			for _, arg := range formatArgs {
				if arg.Kind != fstring.ArgumentIndex {
					continue
				}
				switch arg.Index {
				case i:
					*arg = indexArgument(j)
				case last:
					*arg = indexArgument(i)
				}
			}
		}
	}
}

func mergeNamed[E comparable](formatArgs []*fstring.Argument, provided *ProvidedArgs[E]) {
	for _, pair := range reversedCombinations(len(provided.Named)) {
		i, j := pair[0], pair[1]
		if i >= len(provided.Named) {
			continue
		}

		currentName, currentValue := provided.Named[i].Name, provided.Named[i].Value
		otherName, otherValue := provided.Named[j].Name, provided.Named[j].Value

		if currentValue == otherValue {
			provided.Named = swapRemoveNamed(provided.Named, i)

			for _, arg := range formatArgs {
				if arg.Kind == fstring.ArgumentName && arg.Name == currentName {
					*arg = namedArgument(otherName)
				}
			}
		}
	}
}

func reuseNamedInPositional[E comparable](formatArgs []*fstring.Argument, provided *ProvidedArgs[E]) {
	for i := len(provided.Positional) - 1; i >= 0; i-- {
		var matchName fstring.Identifier
		found := false

		for _, na := range provided.Named {
			if na.Value == provided.Positional[i] {
				matchName = na.Name
				found = true
				break
			}
		}

		if !found {
			continue
		}

		last := len(provided.Positional) - 1
		provided.Positional = swapRemovePositional(provided.Positional, i)

		for _, arg := range formatArgs {
			if arg.Kind != fstring.ArgumentIndex {
				continue
			}
			switch arg.Index {
			case i:
				*arg = namedArgument(matchName)
			case last:
				*arg = indexArgument(i)
			}
		}
	}
}
