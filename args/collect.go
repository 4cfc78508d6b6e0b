package args

import "github.com/deferfmt/deferfmt/fstring"

// collectArgs walks every format segment in fs, disambiguating precision's
// `.*` into a sequential index argument before the segment's own bare `{}`
// argument (precision claims the next index first, matching the original
// parser's "disambiguate precision before argument" ordering), then the
// segment's own argument, then a width argument if present, then an
// explicit `N$`/`name$` precision argument if present.
//
// It returns a pointer to every *fstring.Argument discovered, in that
// order, so later resolver passes can rewrite them in place.
func collectArgs(fs *fstring.FormatString) []*fstring.Argument {
	var out []*fstring.Argument
	nextIndex := 0

	for i := range fs.Segments {
		seg := &fs.Segments[i]
		if seg.Kind != fstring.SegmentFormat {
			continue
		}

		opts := &seg.Format.Options
		nextPrecision := opts.Precision != nil && opts.Precision.Kind == fstring.PrecisionNextArgument

		if nextPrecision {
			idx := nextIndex
			nextIndex++

			opts.Precision.Kind = fstring.PrecisionCount
			opts.Precision.Count = fstring.Count{Kind: fstring.CountArgument, Argument: indexArgument(idx)}

			out = append(out, &opts.Precision.Count.Argument)
		}

		if seg.Format.Argument == nil {
			idx := nextIndex
			nextIndex++

			arg := indexArgument(idx)
			seg.Format.Argument = &arg
		}

		out = append(out, seg.Format.Argument)

		if opts.Width != nil && opts.Width.Kind == fstring.CountArgument {
			out = append(out, &opts.Width.Argument)
		}

		if !nextPrecision && opts.Precision != nil && opts.Precision.Kind == fstring.PrecisionCount && opts.Precision.Count.Kind == fstring.CountArgument {
			out = append(out, &opts.Precision.Count.Argument)
		}
	}

	return out
}

func indexArgument(i int) fstring.Argument {
	return fstring.Argument{Kind: fstring.ArgumentIndex, Index: i}
}

func namedArgument(name fstring.Identifier) fstring.Argument {
	return fstring.Argument{Kind: fstring.ArgumentName, Name: name}
}
