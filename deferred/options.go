package deferred

import (
	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/fstring"
)

// Config tunes policy the original leaves to its own hardcoded choice.
type Config struct {
	// AllowAnyIntegerAsCount accepts any non-negative integer kind for a
	// width/precision argument reference, rather than requiring exactly
	// KindUsize the way the original resolver does. spec.md §4.D leaves
	// this policy configurable; the zero value (false) matches the
	// original's strict behavior.
	AllowAnyIntegerAsCount bool
}

// ResolvedOptions is fstring.Options with every argument reference
// (width/precision) resolved against a concrete ProvidedArgs.
type ResolvedOptions struct {
	Align            *fstring.Align
	Sign             bool
	UseAlternateForm bool
	UseZeroPadding   bool
	Width            int
	Precision        *int
	FormatTrait      fstring.FormatTrait
}

func resolveOptions(opts *fstring.Options, provided *ProvidedArgs, cfg Config) (ResolvedOptions, error) {
	width, err := resolveWidth(opts.Width, provided, cfg)
	if err != nil {
		return ResolvedOptions{}, err
	}

	precision, err := resolvePrecision(opts.Precision, provided, cfg)
	if err != nil {
		return ResolvedOptions{}, err
	}

	return ResolvedOptions{
		Align:            opts.Align,
		Sign:             opts.Sign == fstring.SignPlus,
		UseAlternateForm: opts.UseAlternateForm,
		UseZeroPadding:   opts.UseZeroPadding,
		Width:            width,
		Precision:        precision,
		FormatTrait:      opts.FormatTrait,
	}, nil
}

func resolveCount(count *fstring.Count, provided *ProvidedArgs, cfg Config) (int, error) {
	if count == nil {
		return 0, nil
	}

	if count.Kind == fstring.CountInteger {
		return count.Integer, nil
	}

	value, err := provided.get(&count.Argument)
	if err != nil {
		return 0, err
	}

	return resolveUsize(value, cfg)
}

func resolveWidth(width *fstring.Count, provided *ProvidedArgs, cfg Config) (int, error) {
	return resolveCount(width, provided, cfg)
}

func resolvePrecision(precision *fstring.Precision, provided *ProvidedArgs, cfg Config) (*int, error) {
	if precision == nil {
		return nil, nil
	}

	switch precision.Kind {
	case fstring.PrecisionCount:
		n, err := resolveCount(&precision.Count, provided, cfg)
		if err != nil {
			return nil, err
		}

		return &n, nil

	default:
		// PrecisionNextArgument is disambiguated into PrecisionCount by
		// args.Resolve before render ever sees this format string.
		panic("deferred: precision not disambiguated by argument resolver")
	}
}

func resolveUsize(value Value, cfg Config) (int, error) {
	if !value.Kind.isInteger() {
		return 0, deferrs.NewInvalidArgTypeError(KindUsize.String(), value.Kind.String())
	}

	if !cfg.AllowAnyIntegerAsCount && value.Kind != KindUsize {
		return 0, deferrs.NewInvalidArgTypeError(KindUsize.String(), value.Kind.String())
	}

	if value.Int.Sign() < 0 {
		return 0, deferrs.NewUsizeConversionError(value.Kind.String())
	}

	if !value.Int.IsInt64() {
		return 0, deferrs.NewUsizeConversionError(value.Kind.String())
	}

	return int(value.Int.Int64()), nil
}
