package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHeaderPointerWidth(t *testing.T) {
	h16 := NewHeader(PointerWidth16, LevelNone, false)
	require.Equal(t, PointerWidth16, h16.PointerWidth())

	h32 := NewHeader(PointerWidth32, LevelNone, false)
	require.Equal(t, PointerWidth32, h32.PointerWidth())

	h64 := NewHeader(PointerWidth64, LevelNone, false)
	require.Equal(t, PointerWidth64, h64.PointerWidth())
}

func TestNewHeaderLevelRoundTrip(t *testing.T) {
	levels := []Level{LevelNone, LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}
	for _, lvl := range levels {
		h := NewHeader(PointerWidth64, lvl, false)
		require.Equal(t, lvl, h.Level())
	}
}

func TestNewHeaderStamp(t *testing.T) {
	withStamp := NewHeader(PointerWidth16, LevelNone, true)
	require.True(t, withStamp.HasStamp())

	withoutStamp := NewHeader(PointerWidth16, LevelNone, false)
	require.False(t, withoutStamp.HasStamp())
}

func TestParseHeaderRejectsUnknownBits(t *testing.T) {
	// bits 2-3 are reserved and never set by NewHeader.
	_, ok := ParseHeader(0b0000_0100)
	require.False(t, ok)
}

func TestParseHeaderRejectsInvalidLevelCombination(t *testing.T) {
	// 0b0011_0000 sets both LEVEL_DEBUG and LEVEL_WARN bits, a combination
	// NewHeader never produces.
	_, ok := ParseHeader(0b0011_0000)
	require.False(t, ok)
}

func TestParseHeaderRoundTrip(t *testing.T) {
	original := NewHeader(PointerWidth64, LevelError, true)

	parsed, ok := ParseHeader(original.Byte())
	require.True(t, ok)
	require.Equal(t, original, parsed)
	require.Equal(t, PointerWidth64, parsed.PointerWidth())
	require.Equal(t, LevelError, parsed.Level())
	require.True(t, parsed.HasStamp())
}

func TestHeaderEmptyFrame(t *testing.T) {
	// spec.md "Empty frame" scenario: pointer-width bits only, no stamp, no
	// level.
	h := NewHeader(PointerWidth32, LevelNone, false)
	require.Equal(t, PointerWidth32, h.PointerWidth())
	require.Equal(t, LevelNone, h.Level())
	require.False(t, h.HasStamp())
}
