package rose

import (
	"testing"

	"github.com/rminderhoud/Revise/rose/rbytes"
	"github.com/rminderhoud/Revise/rose/stl"
	"github.com/stretchr/testify/require"
)

func TestSniffFormat_Table(t *testing.T) {
	table := stl.New(stl.KindItem)
	writer := rbytes.NewWriter()
	require.NoError(t, table.Encode(writer))
	require.Equal(t, FormatTable, SniffFormat(writer.Bytes()))
}

func TestSniffFormat_Script(t *testing.T) {
	// an empty script is just a zero trigger count
	require.Equal(t, FormatScript, SniffFormat([]byte{0, 0, 0, 0}))
}

func TestSniffFormat_JSON(t *testing.T) {
	require.Equal(t, FormatJSON, SniffFormat([]byte(`{"kind": "item"}`)))
	require.Equal(t, FormatJSON, SniffFormat([]byte(" \t\r\n  [1, 2]")))
}

func TestSniffFormat_Unknown(t *testing.T) {
	require.Equal(t, FormatUnknown, SniffFormat([]byte{}))
	// negative trigger count rules a script out
	require.Equal(t, FormatUnknown, SniffFormat([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	require.Equal(t, FormatUnknown, SniffFormat([]byte{0xDE, 0xAD, 0xBE}))
}
