package deferred

import (
	"strconv"
	"strings"

	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/fstring"
)

// evaluationContext tracks pretty-debug indentation depth across a nested
// render, the way the original's EvaluationContext does.
type evaluationContext struct {
	indentation int
}

// Render evaluates fs against provided, producing the final string. fs must
// already have had every argument reference disambiguated by args.Resolve.
func Render(fs *fstring.FormatString, provided *ProvidedArgs, cfg Config) (string, error) {
	var b strings.Builder

	for i := range fs.Segments {
		seg := &fs.Segments[i]

		if seg.Kind == fstring.SegmentLiteral {
			b.WriteString(seg.Literal.Unescaped())
			continue
		}

		argument := seg.Format.Argument
		if argument == nil {
			panic("deferred: argument not disambiguated by argument resolver")
		}

		value, err := provided.get(argument)
		if err != nil {
			return "", err
		}

		opts, err := resolveOptions(&seg.Format.Options, provided, cfg)
		if err != nil {
			return "", err
		}

		ctx := &evaluationContext{}

		if err := renderValue(&b, value, ctx, opts); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

func renderValue(b *strings.Builder, value Value, ctx *evaluationContext, opts ResolvedOptions) error {
	switch value.Kind {
	case KindBool:
		return renderBool(b, value, opts)
	case KindChar:
		return renderChar(b, value, opts)
	case KindString:
		return renderString(b, value, opts)
	case KindList:
		return renderCollection(b, value.List, ctx, opts, '[', ']', false)
	case KindTuple:
		return renderCollection(b, value.List, ctx, opts, '(', ')', false)
	case KindType:
		return renderType(b, value.Type, ctx, opts)
	default:
		if value.Kind.isInteger() {
			return renderNumeric(b, value, ctx, opts, func() (string, error) {
				return renderInteger(value.Kind, value.Int, opts)
			})
		}

		if value.Kind.isFloat() {
			bitSize := 64
			if value.Kind == KindF32 {
				bitSize = 32
			}

			return renderNumeric(b, value, ctx, opts, func() (string, error) {
				return renderFloat(value.Kind, value.Float, bitSize, opts)
			})
		}

		return deferrs.NewFormatNotImplementedError(formatTraitName(opts.FormatTrait), value.Kind.String())
	}
}

func renderNumeric(b *strings.Builder, value Value, _ *evaluationContext, opts ResolvedOptions, render func() (string, error)) error {
	s, err := render()
	if err != nil {
		return err
	}

	b.WriteString(pipelineLength(value.Kind.class(), s, opts))
	return nil
}

func renderBool(b *strings.Builder, value Value, opts ResolvedOptions) error {
	switch opts.FormatTrait {
	case fstring.TraitDisplay, fstring.TraitDebug, fstring.TraitDebugLowerHex, fstring.TraitDebugUpperHex:
		s := "false"
		if value.Bool {
			s = "true"
		}

		b.WriteString(pipelineLength(classMisc, s, opts))
		return nil
	default:
		return deferrs.NewFormatNotImplementedError(formatTraitName(opts.FormatTrait), value.Kind.String())
	}
}

func renderChar(b *strings.Builder, value Value, opts ResolvedOptions) error {
	switch opts.FormatTrait {
	case fstring.TraitDisplay:
		b.WriteString(pipelineLength(classMisc, string(value.Char), opts))
		return nil
	case fstring.TraitDebug, fstring.TraitDebugLowerHex, fstring.TraitDebugUpperHex:
		b.WriteString(pipelineLength(classMisc, strconv.QuoteRune(value.Char), opts))
		return nil
	default:
		return deferrs.NewFormatNotImplementedError(formatTraitName(opts.FormatTrait), value.Kind.String())
	}
}

func renderString(b *strings.Builder, value Value, opts ResolvedOptions) error {
	switch opts.FormatTrait {
	case fstring.TraitDisplay:
		b.WriteString(pipelineLength(classMisc, value.Str, opts))
		return nil
	case fstring.TraitDebug, fstring.TraitDebugLowerHex, fstring.TraitDebugUpperHex:
		b.WriteString(pipelineLength(classMisc, strconv.Quote(value.Str), opts))
		return nil
	default:
		return deferrs.NewFormatNotImplementedError(formatTraitName(opts.FormatTrait), value.Kind.String())
	}
}

func renderCollection(b *strings.Builder, elements []Value, ctx *evaluationContext, opts ResolvedOptions, open, close byte, skipDelimitersIfEmpty bool) error {
	switch opts.FormatTrait {
	case fstring.TraitDebug, fstring.TraitDebugLowerHex, fstring.TraitDebugUpperHex:
		return renderCollectionElements(b, elements, ctx, opts, open, close, false, skipDelimitersIfEmpty, renderValue)
	default:
		return deferrs.NewFormatNotImplementedError(formatTraitName(opts.FormatTrait), "collection")
	}
}

// renderCollectionElements is the shared collection-printing loop: plain
// "a, b, c" joining, or (alternate form) one element per line with
// tab indentation growing with ctx.indentation, matching the original's
// collection_string_impl.
func renderCollectionElements[T any](
	b *strings.Builder,
	elements []T,
	ctx *evaluationContext,
	opts ResolvedOptions,
	open, close byte,
	spacePadding bool,
	skipDelimitersIfEmpty bool,
	printElement func(*strings.Builder, T, *evaluationContext, ResolvedOptions) error,
) error {
	if len(elements) == 0 {
		if !skipDelimitersIfEmpty {
			b.WriteByte(open)
			b.WriteByte(close)
		}

		return nil
	}

	pretty := opts.UseAlternateForm

	b.WriteByte(open)

	if pretty {
		b.WriteByte('\n')
		ctx.indentation++
	} else if spacePadding {
		b.WriteByte(' ')
	}

	for i, element := range elements {
		if pretty {
			b.WriteString(strings.Repeat("\t", ctx.indentation))
		}

		if err := printElement(b, element, ctx, opts); err != nil {
			return err
		}

		if pretty {
			b.WriteByte(',')
			b.WriteByte('\n')
		} else if i+1 != len(elements) {
			b.WriteString(", ")
		}
	}

	if pretty {
		ctx.indentation--
		b.WriteString(strings.Repeat("\t", ctx.indentation))
	} else if spacePadding {
		b.WriteByte(' ')
	}

	b.WriteByte(close)

	return nil
}

func renderType(b *strings.Builder, tv *TypeValue, ctx *evaluationContext, opts ResolvedOptions) error {
	switch opts.FormatTrait {
	case fstring.TraitDebug, fstring.TraitDebugLowerHex, fstring.TraitDebugUpperHex:
		name := tv.Name
		if tv.Variant.HasEnumVariant {
			name = tv.Variant.EnumVariant
		}

		return renderStruct(b, name, tv.Variant, ctx, opts)
	default:
		return deferrs.NewFormatNotImplementedError(formatTraitName(opts.FormatTrait), "type")
	}
}

func renderStruct(b *strings.Builder, name string, variant TypeVariant, ctx *evaluationContext, opts ResolvedOptions) error {
	switch variant.Kind {
	case VariantUnit:
		b.WriteString(name)
		return nil

	case VariantTuple:
		b.WriteString(name)
		return renderCollectionElements(b, variant.Tuple, ctx, opts, '(', ')', false, true, renderValue)

	case VariantNamed:
		b.WriteString(name)

		if len(variant.Named) > 0 {
			b.WriteByte(' ')
		}

		return renderCollectionElements(b, variant.Named, ctx, opts, '{', '}', true, true,
			func(b *strings.Builder, field NamedField, ctx *evaluationContext, opts ResolvedOptions) error {
				b.WriteString(field.Name)
				b.WriteString(": ")
				return renderValue(b, field.Value, ctx, opts)
			})

	default:
		return nil
	}
}

// pipelineLength applies precision (truncation, Misc values only) then
// width (padding, skipped for zero-padded numerics and never applied to
// structures), matching the original's pipeline_length.
func pipelineLength(class valueClass, s string, opts ResolvedOptions) string {
	runes := []rune(s)

	if opts.Precision != nil && len(runes) > *opts.Precision && class == classMisc {
		runes = runes[:*opts.Precision]
		s = string(runes)
	}

	applyWidth := false
	switch class {
	case classNumeric:
		applyWidth = !opts.UseZeroPadding
	case classStructure:
		applyWidth = false
	case classMisc:
		applyWidth = true
	}

	if !applyWidth || len(runes) >= opts.Width {
		return s
	}

	align := fstring.Align{Alignment: fstring.AlignLeft}
	if class == classNumeric {
		align.Alignment = fstring.AlignRight
	}

	if opts.Align != nil {
		align = *opts.Align
	}

	fill := ' '
	if align.HasFill {
		fill = align.Fill
	}

	padCount := opts.Width - len(runes)

	switch align.Alignment {
	case fstring.AlignLeft:
		return s + strings.Repeat(string(fill), padCount)
	case fstring.AlignCenter:
		left := padCount / 2
		right := padCount - left
		return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), right)
	default: // AlignRight
		return strings.Repeat(string(fill), padCount) + s
	}
}
