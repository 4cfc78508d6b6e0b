package deferred

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/fstring"
)

// renderInteger formats value per opts.FormatTrait, matching the original's
// integer_string combinator table. Pointer is never implemented here: a
// deferred Value has already crossed the wire by the time it's rendered,
// so there is no live address left to report.
func renderInteger(kind ValueKind, value *big.Int, opts ResolvedOptions) (string, error) {
	switch opts.FormatTrait {
	case fstring.TraitDisplay, fstring.TraitDebug:
		return formatIntBase(value, 10, false, "", opts), nil
	case fstring.TraitUpperHex, fstring.TraitDebugUpperHex:
		return formatIntBase(value, 16, true, "0x", opts), nil
	case fstring.TraitLowerHex, fstring.TraitDebugLowerHex:
		return formatIntBase(value, 16, false, "0x", opts), nil
	case fstring.TraitOctal:
		return formatIntBase(value, 8, false, "0o", opts), nil
	case fstring.TraitBinary:
		return formatIntBase(value, 2, false, "0b", opts), nil
	case fstring.TraitLowerExp:
		return formatIntExp(value, false, opts), nil
	case fstring.TraitUpperExp:
		return formatIntExp(value, true, opts), nil
	default:
		return "", deferrs.NewFormatNotImplementedError(formatTraitName(opts.FormatTrait), kind.String())
	}
}

func formatIntBase(value *big.Int, base int, upper bool, prefix string, opts ResolvedOptions) string {
	neg := value.Sign() < 0

	abs := value
	if neg {
		abs = new(big.Int).Neg(value)
	}

	digits := abs.Text(base)
	if upper {
		digits = strings.ToUpper(digits)
	}

	sign := ""
	switch {
	case neg:
		sign = "-"
	case opts.Sign:
		sign = "+"
	}

	altPrefix := ""
	if opts.UseAlternateForm && base != 10 {
		altPrefix = prefix
	}

	if opts.UseZeroPadding {
		pad := opts.Width - len(sign) - len(altPrefix) - len(digits)
		if pad > 0 {
			digits = strings.Repeat("0", pad) + digits
		}
	}

	return sign + altPrefix + digits
}

// formatIntExp renders value in scientific notation with an integral
// mantissa (Rust's integer {:e} never produces a fractional mantissa
// component beyond what the trailing zeros strip away).
func formatIntExp(value *big.Int, upper bool, opts ResolvedOptions) string {
	neg := value.Sign() < 0

	abs := value
	if neg {
		abs = new(big.Int).Neg(value)
	}

	digits := abs.Text(10)
	exponent := len(digits) - 1

	mantissa := strings.TrimRight(digits[1:], "0")

	var b strings.Builder

	if neg {
		b.WriteByte('-')
	} else if opts.Sign {
		b.WriteByte('+')
	}

	b.WriteByte(digits[0])

	if mantissa != "" {
		b.WriteByte('.')
		b.WriteString(mantissa)
	}

	if upper {
		b.WriteByte('E')
	} else {
		b.WriteByte('e')
	}

	b.WriteString(strconv.Itoa(exponent))

	s := b.String()

	if opts.UseZeroPadding && len(s) < opts.Width {
		prefixLen := 0
		if neg || opts.Sign {
			prefixLen = 1
		}

		s = s[:prefixLen] + strings.Repeat("0", opts.Width-len(s)) + s[prefixLen:]
	}

	return s
}

func formatTraitName(t fstring.FormatTrait) string {
	switch t {
	case fstring.TraitDisplay:
		return "Display"
	case fstring.TraitDebug:
		return "Debug"
	case fstring.TraitDebugLowerHex:
		return "Debug(LowerHex)"
	case fstring.TraitDebugUpperHex:
		return "Debug(UpperHex)"
	case fstring.TraitOctal:
		return "Octal"
	case fstring.TraitLowerHex:
		return "LowerHex"
	case fstring.TraitUpperHex:
		return "UpperHex"
	case fstring.TraitPointer:
		return "Pointer"
	case fstring.TraitBinary:
		return "Binary"
	case fstring.TraitLowerExp:
		return "LowerExp"
	case fstring.TraitUpperExp:
		return "UpperExp"
	default:
		return "unknown"
	}
}
