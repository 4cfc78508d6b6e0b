package deferred

import (
	"strconv"

	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/fstring"
)

// NamedValue pairs a provided value with the identifier it was supplied
// under.
type NamedValue struct {
	Name  fstring.Identifier
	Value Value
}

// ProvidedArgs is the set of resolved values available while rendering a
// format string. By the time Render sees it, args.Resolve has already
// disambiguated every reference in the format string into a concrete
// index or identifier, so lookups here are simple indexing/map-style
// matching rather than the disambiguation args performs.
type ProvidedArgs struct {
	Positional []Value
	Named      []NamedValue
}

func (p *ProvidedArgs) get(arg *fstring.Argument) (Value, error) {
	switch arg.Kind {
	case fstring.ArgumentIndex:
		if arg.Index < 0 || arg.Index >= len(p.Positional) {
			return Value{}, deferrs.NewUnknownArgError(strconv.Itoa(arg.Index))
		}

		return p.Positional[arg.Index], nil

	case fstring.ArgumentName:
		for _, na := range p.Named {
			if na.Name == arg.Name {
				return na.Value, nil
			}
		}

		return Value{}, deferrs.NewUnknownArgError(string(arg.Name))

	default:
		return Value{}, deferrs.NewUnknownArgError("")
	}
}
