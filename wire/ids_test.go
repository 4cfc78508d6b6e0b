package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifierWidths(t *testing.T) {
	var crate CrateID = 0xffff
	var print PrintStatementID = 0xffff
	var write WriteStatementID = 0xffff
	var ts TypeStructureID = 0xffff

	require.Equal(t, uint16(0xffff), uint16(crate))
	require.Equal(t, uint16(0xffff), uint16(print))
	require.Equal(t, uint16(0xffff), uint16(write))
	require.Equal(t, uint16(0xffff), uint16(ts))
}
