package cli

import (
	"testing"

	"github.com/rminderhoud/Revise/rose"
	"github.com/rminderhoud/Revise/rose/rbytes"
	"github.com/rminderhoud/Revise/rose/stl"
	"github.com/stretchr/testify/require"
)

func createTableBytes(t *testing.T) []byte {
	table := stl.New(stl.KindNormal)
	table.AddRow("greeting", 1)
	require.NoError(t, table.SetText(0, stl.LanguageEnglish, "Hello"))
	writer := rbytes.NewWriter()
	require.NoError(t, table.Encode(writer))
	return writer.Bytes()
}

func TestConvert_Sniffed(t *testing.T) {
	fileBytes := createTableBytes(t)
	jsonBytes, err := Convert(fileBytes, "")
	require.NoError(t, err)
	require.Equal(t, rose.FormatJSON, rose.SniffFormat(jsonBytes))

	resultBytes, err := Convert(jsonBytes, "")
	require.NoError(t, err)
	require.Equal(t, fileBytes, resultBytes)
}

func TestConvert_ExplicitFormat(t *testing.T) {
	fileBytes := createTableBytes(t)
	jsonBytes, err := Convert(fileBytes, "table")
	require.NoError(t, err)

	resultBytes, err := Convert(jsonBytes, "json")
	require.NoError(t, err)
	require.Equal(t, fileBytes, resultBytes)
}

func TestConvert_UnrecognizedFormat(t *testing.T) {
	_, err := Convert([]byte{}, "stb")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"stb"`)
}
