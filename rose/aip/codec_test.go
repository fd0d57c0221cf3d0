package aip

import (
	"testing"

	"github.com/rminderhoud/Revise/rose/rbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSampleScript() Script {
	return Script{
		Triggers: []Trigger{
			{
				Conditions: []Record{
					&CheckZoneTime{Minimum: 480, Maximum: 720},
					&CheckHealthPercent{Minimum: 0, Maximum: 50},
				},
				Actions: []Record{
					&Say{Message: "Who dares enter?"},
					&CastSpell{SpellID: 42},
				},
			},
			{
				Conditions: []Record{
					&CheckRandomChance{Percent: 25},
					&CheckTargetDistance{Maximum: 1000},
				},
				Actions: []Record{
					&MoveTo{X: -150, Y: 9200},
					&Wait{Duration: 3000},
				},
			},
		},
	}
}

func TestEncodeDecode_Script(t *testing.T) {
	script := createSampleScript()

	writer := rbytes.NewWriter()
	Encode(writer, script)

	decoded, err := Decode(rbytes.NewBytesReader(writer.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, script.Triggers, decoded.Triggers)

	reencoded := rbytes.NewWriter()
	Encode(reencoded, *decoded)
	assert.Equal(t, writer.Bytes(), reencoded.Bytes())
}

func TestEncodeDecode_EmptyScript(t *testing.T) {
	writer := rbytes.NewWriter()
	Encode(writer, Script{})

	assert.Equal(t, []byte{0, 0, 0, 0}, writer.Bytes())

	decoded, err := Decode(rbytes.NewBytesReader(writer.Bytes()))
	require.NoError(t, err)
	assert.Empty(t, decoded.Triggers)
}

func TestEncodeDecode_EmptyStreams(t *testing.T) {
	script := Script{
		Triggers: []Trigger{
			{
				Conditions: []Record{},
				Actions:    []Record{},
			},
		},
	}

	writer := rbytes.NewWriter()
	Encode(writer, script)
	assert.Equal(
		t,
		[]byte{
			1, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		},
		writer.Bytes(),
	)

	decoded, err := Decode(rbytes.NewBytesReader(writer.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, script.Triggers, decoded.Triggers)
}

func TestDecode_StopsAtTriggerCount(t *testing.T) {
	writer := rbytes.NewWriter()
	Encode(writer, createSampleScript())
	scriptLength := writer.Len()
	writer.WriteBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})

	reader := rbytes.NewBytesReader(writer.Bytes())
	_, err := Decode(reader)
	require.NoError(t, err)

	// trailing bytes are not probed
	assert.Equal(t, int64(scriptLength), reader.Position())
}

func TestDecodeRecords_UnknownTag(t *testing.T) {
	reader := rbytes.NewBytesReader(
		[]byte{
			2, 0, 0, 0,
			1, 0, 0, 0, // valid CheckZoneTime...
			0xE0, 1, 0, 0,
			0xD0, 2, 0, 0,
			0x0F, 0x27, 0, 0, // ...then tag 9999
		},
	)

	records, err := DecodeRecords(reader, Conditions)

	unknown := ErrUnknownTag{}
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, Tag(9999), unknown.Tag)
	// no partial record list comes back
	assert.Nil(t, records)
}

func TestDecodeRecords_NegativeCount(t *testing.T) {
	reader := rbytes.NewBytesReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})

	_, err := DecodeRecords(reader, Conditions)
	assert.ErrorContains(t, err, "negative record count")
}

func TestDecodeRecords_CountPastStream(t *testing.T) {
	reader := rbytes.NewBytesReader(
		[]byte{
			100, 0, 0, 0,
			1, 0, 0, 0,
		},
	)

	_, err := DecodeRecords(reader, Conditions)

	truncated := rbytes.ErrTruncated{}
	require.ErrorAs(t, err, &truncated)
}

func TestDecode_TriggerCountPastStream(t *testing.T) {
	reader := rbytes.NewBytesReader([]byte{100, 0, 0, 0})

	_, err := Decode(reader)

	truncated := rbytes.ErrTruncated{}
	require.ErrorAs(t, err, &truncated)
}
