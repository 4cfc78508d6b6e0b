package fstring

import (
	"testing"

	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/stretchr/testify/require"
)

func assertOptions(t *testing.T, str string, expected Options) {
	t.Helper()

	actual, err := parseOptions(0, str)
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func TestParseOptionsEmpty(t *testing.T) {
	assertOptions(t, "", Options{})
}

func TestParseOptionsAlignment(t *testing.T) {
	assertOptions(t, "<", Options{Align: &Align{Alignment: AlignLeft}})
}

func TestParseOptionsFillAlignment(t *testing.T) {
	assertOptions(t, "x^", Options{Align: &Align{Alignment: AlignCenter, Fill: 'x', HasFill: true}})
}

func TestParseOptionsPlusSign(t *testing.T) {
	assertOptions(t, "+", Options{Sign: SignPlus})
}

func TestParseOptionsMinusSign(t *testing.T) {
	assertOptions(t, "-", Options{Sign: SignMinus})
}

func TestParseOptionsAlternateForm(t *testing.T) {
	assertOptions(t, "#", Options{UseAlternateForm: true})
}

func TestParseOptionsZeroPadding(t *testing.T) {
	assertOptions(t, "0", Options{UseZeroPadding: true})
}

func TestParseOptionsWidthCountLiteral(t *testing.T) {
	assertOptions(t, "1", Options{Width: &Count{Kind: CountInteger, Integer: 1}})
}

func TestParseOptionsWidthCountIndexArgument(t *testing.T) {
	assertOptions(t, "1$", Options{Width: &Count{Kind: CountArgument, Argument: indexArgument(1)}})
}

func TestParseOptionsWidthCountZeroIndexArgument(t *testing.T) {
	assertOptions(t, "0$", Options{Width: &Count{Kind: CountArgument, Argument: indexArgument(0)}})

	assertOptions(t, "00$", Options{
		UseZeroPadding: true,
		Width:          &Count{Kind: CountArgument, Argument: indexArgument(0)},
	})
}

func TestParseOptionsWidthCountNamedArgument(t *testing.T) {
	assertOptions(t, "x$", Options{Width: &Count{Kind: CountArgument, Argument: namedArgument("x")}})
}

func TestParseOptionsPrecisionNextArgument(t *testing.T) {
	assertOptions(t, ".*", Options{Precision: &Precision{Kind: PrecisionNextArgument}})
}

func TestParseOptionsPrecisionCountLiteral(t *testing.T) {
	assertOptions(t, ".01", Options{
		Precision: &Precision{Kind: PrecisionCount, Count: Count{Kind: CountInteger, Integer: 1}},
	})
}

func TestParseOptionsFormatTrait(t *testing.T) {
	assertOptions(t, "x?", Options{FormatTrait: TraitDebugLowerHex})
}

func TestParseOptionsAllCombined(t *testing.T) {
	count := Count{Kind: CountArgument, Argument: namedArgument("x")}

	expected := Options{
		Align:            &Align{Alignment: AlignRight, Fill: '🦀', HasFill: true},
		Sign:             SignPlus,
		UseAlternateForm: true,
		UseZeroPadding:   true,
		Width:            &count,
		Precision:        &Precision{Kind: PrecisionCount, Count: count},
		FormatTrait:      TraitDebugLowerHex,
	}

	assertOptions(t, "🦀>+#0x$.x$x?", expected)
}

func TestParseOptionsPrecisionEmptyError(t *testing.T) {
	_, err := parseOptions(0, "00.")
	require.ErrorIs(t, err, deferrs.ErrPrecisionEmpty)
}

func TestParseOptionsCountUnclosedArgumentError(t *testing.T) {
	_, err := parseOptions(0, "00.xxx")
	require.ErrorIs(t, err, deferrs.ErrCountUnclosedArgument)
}
