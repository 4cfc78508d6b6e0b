package deferred

import (
	"math/big"
	"testing"

	"github.com/deferfmt/deferfmt/args"
	"github.com/deferfmt/deferfmt/fstring"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, str string, provided *ProvidedArgs) string {
	t.Helper()

	fs, err := fstring.Parse(str)
	require.NoError(t, err)

	// args.Resolve compacts positional/named arguments with equal values,
	// so give each placeholder a distinct int to keep disambiguation from
	// collapsing two genuinely different arguments together.
	counter := 0

	argProvided := &args.ProvidedArgs[int]{}
	for range provided.Positional {
		argProvided.Positional = append(argProvided.Positional, counter)
		counter++
	}

	for _, na := range provided.Named {
		argProvided.Named = append(argProvided.Named, args.NamedArg[int]{Name: na.Name, Value: counter})
		counter++
	}

	require.NoError(t, args.Resolve(fs, argProvided, args.ResolverConfig[int]{}))

	out, err := Render(fs, provided, Config{})
	require.NoError(t, err)

	return out
}

func TestRenderLiteralOnly(t *testing.T) {
	out := render(t, "hello world", &ProvidedArgs{})
	require.Equal(t, "hello world", out)
}

func TestRenderDisplayIntegers(t *testing.T) {
	out := render(t, "{} {}", &ProvidedArgs{Positional: []Value{NewU32(7), NewI32(-3)}})
	require.Equal(t, "7 -3", out)
}

func TestRenderBoolAndChar(t *testing.T) {
	out := render(t, "{} {}", &ProvidedArgs{Positional: []Value{NewBool(true), NewChar('x')}})
	require.Equal(t, "true x", out)
}

func TestRenderString(t *testing.T) {
	out := render(t, "{}", &ProvidedArgs{Positional: []Value{NewString("hi")}})
	require.Equal(t, "hi", out)
}

func TestRenderNamedArgument(t *testing.T) {
	out := render(t, "{name}", &ProvidedArgs{Named: []NamedValue{{Name: "name", Value: NewU8(5)}}})
	require.Equal(t, "5", out)
}

func TestRenderWidthPadding(t *testing.T) {
	out := render(t, "{:5}", &ProvidedArgs{Positional: []Value{NewU8(7)}})
	require.Equal(t, "    7", out)
}

func TestRenderWidthPaddingLeftAlignedForMisc(t *testing.T) {
	out := render(t, "{:5}", &ProvidedArgs{Positional: []Value{NewString("hi")}})
	require.Equal(t, "hi   ", out)
}

func TestRenderZeroPadding(t *testing.T) {
	out := render(t, "{:05}", &ProvidedArgs{Positional: []Value{NewU8(7)}})
	require.Equal(t, "00007", out)
}

func TestRenderSignPlus(t *testing.T) {
	out := render(t, "{:+}", &ProvidedArgs{Positional: []Value{NewI32(7)}})
	require.Equal(t, "+7", out)
}

func TestRenderHexAlternateForm(t *testing.T) {
	out := render(t, "{:#x}", &ProvidedArgs{Positional: []Value{NewU32(255)}})
	require.Equal(t, "0xff", out)

	out = render(t, "{:#X}", &ProvidedArgs{Positional: []Value{NewU32(255)}})
	require.Equal(t, "0xFF", out)
}

func TestRenderHexZeroPaddedWithPrefix(t *testing.T) {
	out := render(t, "{:#010x}", &ProvidedArgs{Positional: []Value{NewU32(255)}})
	require.Equal(t, "0x000000ff", out)
}

func TestRenderBinaryAndOctal(t *testing.T) {
	out := render(t, "{:#b}", &ProvidedArgs{Positional: []Value{NewU8(5)}})
	require.Equal(t, "0b101", out)

	out = render(t, "{:#o}", &ProvidedArgs{Positional: []Value{NewU8(8)}})
	require.Equal(t, "0o10", out)
}

func TestRenderPrecisionTruncatesString(t *testing.T) {
	out := render(t, "{:.3}", &ProvidedArgs{Positional: []Value{NewString("hello")}})
	require.Equal(t, "hel", out)
}

func TestRenderFloatDisplay(t *testing.T) {
	out := render(t, "{}", &ProvidedArgs{Positional: []Value{NewF64(3.5)}})
	require.Equal(t, "3.5", out)
}

func TestRenderFloatPrecision(t *testing.T) {
	out := render(t, "{:.2}", &ProvidedArgs{Positional: []Value{NewF64(3.14159)}})
	require.Equal(t, "3.14", out)
}

func TestRenderFloatExp(t *testing.T) {
	out := render(t, "{:e}", &ProvidedArgs{Positional: []Value{NewF64(1500.0)}})
	require.Equal(t, "1.5e3", out)
}

func TestRenderIntegerExp(t *testing.T) {
	out := render(t, "{:e}", &ProvidedArgs{Positional: []Value{NewU32(100)}})
	require.Equal(t, "1e2", out)
}

func TestRenderU128(t *testing.T) {
	big128, ok := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	require.True(t, ok)

	out := render(t, "{}", &ProvidedArgs{Positional: []Value{NewU128(big128)}})
	require.Equal(t, "340282366920938463463374607431768211455", out)
}

func TestRenderListDebug(t *testing.T) {
	out := render(t, "{:?}", &ProvidedArgs{Positional: []Value{
		NewList([]Value{NewU8(1), NewU8(2), NewU8(3)}),
	}})
	require.Equal(t, "[1, 2, 3]", out)
}

func TestRenderListDebugEmpty(t *testing.T) {
	out := render(t, "{:?}", &ProvidedArgs{Positional: []Value{NewList(nil)}})
	require.Equal(t, "[]", out)
}

func TestRenderListDebugPretty(t *testing.T) {
	out := render(t, "{:#?}", &ProvidedArgs{Positional: []Value{
		NewList([]Value{NewU8(1), NewU8(2)}),
	}})
	require.Equal(t, "[\n\t1,\n\t2,\n]", out)
}

func TestRenderDisplayNotImplementedForList(t *testing.T) {
	fs, err := fstring.Parse("{}")
	require.NoError(t, err)

	argProvided := &args.ProvidedArgs[int]{Positional: []int{0}}
	require.NoError(t, args.Resolve(fs, argProvided, args.ResolverConfig[int]{}))

	_, err = Render(fs, &ProvidedArgs{Positional: []Value{NewList([]Value{NewU8(1)})}}, Config{})
	require.Error(t, err)
}

func TestRenderStructTypeUnit(t *testing.T) {
	out := render(t, "{:?}", &ProvidedArgs{Positional: []Value{
		NewStructType("Unit", TypeVariant{Kind: VariantUnit}),
	}})
	require.Equal(t, "Unit", out)
}

func TestRenderStructTypeTuple(t *testing.T) {
	out := render(t, "{:?}", &ProvidedArgs{Positional: []Value{
		NewStructType("Point", TypeVariant{Kind: VariantTuple, Tuple: []Value{NewI32(1), NewI32(2)}}),
	}})
	require.Equal(t, "Point(1, 2)", out)
}

func TestRenderStructTypeNamed(t *testing.T) {
	out := render(t, "{:?}", &ProvidedArgs{Positional: []Value{
		NewStructType("Point", TypeVariant{
			Kind: VariantNamed,
			Named: []NamedField{
				{Name: "x", Value: NewI32(1)},
				{Name: "y", Value: NewI32(2)},
			},
		}),
	}})
	require.Equal(t, "Point { x: 1, y: 2 }", out)
}

func TestRenderEnumTypeUsesVariantName(t *testing.T) {
	out := render(t, "{:?}", &ProvidedArgs{Positional: []Value{
		NewStructType("Color", TypeVariant{
			Kind:           VariantTuple,
			HasEnumVariant: true,
			EnumVariant:    "Red",
			Tuple:          []Value{NewU8(255)},
		}),
	}})
	require.Equal(t, "Red(255)", out)
}

func TestRenderWidthArgumentReference(t *testing.T) {
	out := render(t, "{0:1$}", &ProvidedArgs{Positional: []Value{NewU8(9), NewUsize(4)}})
	require.Equal(t, "   9", out)
}

func TestRenderInvalidWidthArgumentType(t *testing.T) {
	fs, err := fstring.Parse("{0:1$}")
	require.NoError(t, err)

	argProvided := &args.ProvidedArgs[int]{Positional: []int{0, 0}}
	require.NoError(t, args.Resolve(fs, argProvided, args.ResolverConfig[int]{}))

	_, err = Render(fs, &ProvidedArgs{Positional: []Value{NewU8(9), NewString("nope")}}, Config{})
	require.Error(t, err)
}
