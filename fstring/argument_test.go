package fstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgumentIndex(t *testing.T) {
	arg, err := parseArgument(0, "01")
	require.NoError(t, err)
	require.Equal(t, indexArgument(1), arg)
}

func TestParseArgumentIdentifier(t *testing.T) {
	arg, err := parseArgument(0, "x")
	require.NoError(t, err)
	require.Equal(t, namedArgument("x"), arg)
}
