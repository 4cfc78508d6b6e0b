package deferred

import (
	"strconv"
	"strings"

	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/fstring"
)

// renderFloat formats value per opts.FormatTrait, matching the original's
// float_string combinator table. bitSize selects 32 vs 64-bit rendering
// precision (F32 values round-trip through float32 semantics).
func renderFloat(kind ValueKind, value float64, bitSize int, opts ResolvedOptions) (string, error) {
	switch opts.FormatTrait {
	case fstring.TraitDisplay, fstring.TraitDebug, fstring.TraitDebugLowerHex, fstring.TraitDebugUpperHex:
		return formatFloatDecimal(value, bitSize, opts), nil
	case fstring.TraitLowerExp:
		return formatFloatExp(value, bitSize, false, opts), nil
	case fstring.TraitUpperExp:
		return formatFloatExp(value, bitSize, true, opts), nil
	default:
		return "", deferrs.NewFormatNotImplementedError(formatTraitName(opts.FormatTrait), kind.String())
	}
}

func formatFloatDecimal(value float64, bitSize int, opts ResolvedOptions) string {
	prec := -1
	if opts.Precision != nil {
		prec = *opts.Precision
	}

	s := strconv.FormatFloat(value, 'f', prec, bitSize)
	return applyFloatSignAndZeroPad(s, opts)
}

func formatFloatExp(value float64, bitSize int, upper bool, opts ResolvedOptions) string {
	prec := -1
	if opts.Precision != nil {
		prec = *opts.Precision
	}

	s := strconv.FormatFloat(value, 'e', prec, bitSize)

	// Go renders "1e+02"/"1e-02"; Rust renders "1e2"/"1e-2" (no leading
	// zero, no '+' on a positive exponent).
	s = rustifyExponent(s)

	if upper {
		s = strings.Replace(s, "e", "E", 1)
	}

	return applyFloatSignAndZeroPad(s, opts)
}

func rustifyExponent(s string) string {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 {
		return s
	}

	mantissa := s[:idx]
	exp := s[idx+1:]

	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimPrefix(exp, "+")
	exp = strings.TrimPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "0")

	if exp == "" {
		exp = "0"
	}

	if neg {
		exp = "-" + exp
	}

	return mantissa + "e" + exp
}

func applyFloatSignAndZeroPad(s string, opts ResolvedOptions) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	sign := ""
	switch {
	case neg:
		sign = "-"
	case opts.Sign:
		sign = "+"
	}

	if opts.UseZeroPadding {
		pad := opts.Width - len(sign) - len(s)
		if pad > 0 {
			s = strings.Repeat("0", pad) + s
		}
	}

	return sign + s
}
