package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelValid(t *testing.T) {
	require.True(t, LevelNone.Valid())
	require.True(t, LevelTrace.Valid())
	require.False(t, Level(0xff).Valid())
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "none", LevelNone.String())
	require.Equal(t, "error", LevelError.String())
	require.Equal(t, "warn", LevelWarn.String())
	require.Equal(t, "info", LevelInfo.String())
	require.Equal(t, "debug", LevelDebug.String())
	require.Equal(t, "trace", LevelTrace.String())
	require.Equal(t, "unknown", Level(0xff).String())
}
