package deferfmt

import (
	"testing"

	"github.com/deferfmt/deferfmt/args"
	"github.com/deferfmt/deferfmt/deferred"
	"github.com/deferfmt/deferfmt/fstring"
	"github.com/deferfmt/deferfmt/registration"
	"github.com/stretchr/testify/require"
)

func TestRenderValuesPositional(t *testing.T) {
	out, err := RenderValues("value={}", []deferred.Value{deferred.NewU32(42)}, nil, args.ResolverConfig[int]{})
	require.NoError(t, err)
	require.Equal(t, "value=42", out)
}

func TestRenderValuesNamedAndPositional(t *testing.T) {
	name, err := fstring.ParseIdentifier("who")
	require.NoError(t, err)

	out, err := RenderValues(
		"{} says {who}",
		[]deferred.Value{deferred.NewString("hello")},
		[]deferred.NamedValue{{Name: name, Value: deferred.NewString("alice")}},
		args.ResolverConfig[int]{},
	)
	require.NoError(t, err)
	require.Equal(t, "hello says alice", out)
}

func TestRenderValuesInvalidFormatStringReturnsError(t *testing.T) {
	_, err := RenderValues("value={", nil, nil, args.ResolverConfig[int]{})
	require.Error(t, err)
}

func TestRenderValuesUnusedArgumentReturnsError(t *testing.T) {
	_, err := RenderValues("value={}", []deferred.Value{deferred.NewU32(1), deferred.NewU32(2)}, nil, args.ResolverConfig[int]{})
	require.Error(t, err)
}

func TestRenderValuesDisableUnusedPositionalCheck(t *testing.T) {
	out, err := RenderValues(
		"value={}",
		[]deferred.Value{deferred.NewU32(1), deferred.NewU32(2)},
		nil,
		args.ResolverConfig[int]{DisableUnusedPositionalCheck: true},
	)
	require.NoError(t, err)
	require.Equal(t, "value=1", out)
}

func TestNewMemoryRegistrarRegistersAndLooksUp(t *testing.T) {
	r := NewMemoryRegistrar(1)

	shape := registration.StatementShape{
		Expression: registration.StoredExpression{ProcessedFormatString: "x={} y={}", PositionalArgCount: 2},
	}
	crateID, printID, err := r.RegisterPrintStatement("my_crate", shape)
	require.NoError(t, err)

	got, ok := r.PrintStatementShape(crateID, printID)
	require.True(t, ok)
	require.Equal(t, 2, got.ArgCount())
}

func TestNewFileRegistrarRegistersAndLooksUp(t *testing.T) {
	r := NewFileRegistrar(t.TempDir(), 1)

	shape := registration.StatementShape{
		Expression: registration.StoredExpression{ProcessedFormatString: "inner", PositionalArgCount: 1},
	}
	crateID, writeID, err := r.RegisterWriteStatement("my_crate", shape)
	require.NoError(t, err)

	got, ok := r.WriteStatementShape(crateID, writeID)
	require.True(t, ok)
	require.Equal(t, 1, got.ArgCount())
}
