package rose

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rminderhoud/Revise/rose/aip"
	"github.com/rminderhoud/Revise/rose/rbytes"
	"github.com/rminderhoud/Revise/rose/stl"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EndToEndTestSuite struct {
	Kinds           []stl.Kind
	TableByteSlices [][]byte
	ScriptBytes     []byte
	R               *require.Assertions
	suite.Suite
}

func (suite *EndToEndTestSuite) SetupSuite() {
	suite.R = suite.Require()
	suite.Kinds = []stl.Kind{
		stl.KindNormal,
		stl.KindItem,
		stl.KindQuest,
	}
	suite.TableByteSlices = lo.Map(
		suite.Kinds,
		func(kind stl.Kind, _ int) []byte {
			return suite.createTableBytes(kind)
		},
	)
	suite.ScriptBytes = suite.createScriptBytes()
}

func (suite *EndToEndTestSuite) createTableBytes(kind stl.Kind) []byte {
	table := stl.New(kind)
	table.AddRow("greeting", 1)
	table.AddRow("farewell", 2)
	for index := 0; index < table.RowCount(); index++ {
		for j := 0; j < table.LanguageCount(); j++ {
			language := stl.Language(j)
			suite.R.NoError(table.SetText(index, language, fmt.Sprintf("text %d-%d", index, j)))
			if kind.HasDescription() {
				suite.R.NoError(table.SetDescription(index, language, fmt.Sprintf("description %d-%d", index, j)))
			}
			if kind.HasMessages() {
				suite.R.NoError(table.SetStartMessage(index, language, fmt.Sprintf("start %d-%d", index, j)))
				suite.R.NoError(table.SetEndMessage(index, language, fmt.Sprintf("end %d-%d", index, j)))
			}
		}
	}
	writer := rbytes.NewWriter()
	suite.R.NoError(table.Encode(writer))
	return writer.Bytes()
}

func (suite *EndToEndTestSuite) createScriptBytes() []byte {
	script := aip.Script{
		Triggers: []aip.Trigger{
			{
				Conditions: []aip.Record{
					&aip.CheckZoneTime{Minimum: 480, Maximum: 720},
					&aip.CheckHealthPercent{Minimum: 0, Maximum: 50},
				},
				Actions: []aip.Record{
					&aip.Say{Message: "Who dares enter?"},
					&aip.CastSpell{SpellID: 42},
				},
			},
			{
				Conditions: []aip.Record{
					&aip.CheckRandomChance{Percent: 25},
					&aip.CheckTargetDistance{Maximum: 1000},
				},
				Actions: []aip.Record{
					&aip.MoveTo{X: -150, Y: 9200},
					&aip.Wait{Duration: 3000},
				},
			},
		},
	}
	writer := rbytes.NewWriter()
	aip.Encode(writer, script)
	return writer.Bytes()
}

func (suite *EndToEndTestSuite) TestEncodeDecode_Table() {
	lo.ForEach(
		lo.Zip2(suite.Kinds, suite.TableByteSlices),
		func(tuple lo.Tuple2[stl.Kind, []byte], _ int) {
			kind := tuple.A
			fileBytes := tuple.B
			jsonBytes, err := DecodeTable(fileBytes)
			suite.R.NoErrorf(err, "kind %s", kind)
			resultBytes, err := EncodeTable(jsonBytes)
			suite.R.NoErrorf(err, "kind %s", kind)
			suite.R.Equalf(fileBytes, resultBytes, "kind %s", kind)
		},
	)
}

func (suite *EndToEndTestSuite) TestDecodeTable_DocumentShape() {
	lo.ForEach(
		lo.Zip2(suite.Kinds, suite.TableByteSlices),
		func(tuple lo.Tuple2[stl.Kind, []byte], _ int) {
			kind := tuple.A
			fileBytes := tuple.B
			jsonBytes, err := DecodeTable(fileBytes)
			suite.R.NoErrorf(err, "kind %s", kind)

			document := TableDocument{}
			suite.R.NoError(json.Unmarshal(jsonBytes, &document))
			suite.R.Equal(string(kind), document.Kind)
			suite.R.Equal(stl.LanguageCount, document.LanguageCount)
			suite.R.Len(document.Rows, 2)

			jsonString := string(jsonBytes)
			suite.R.Equal(
				kind.HasDescription(),
				bytes.Contains(jsonBytes, []byte(`"description"`)),
				jsonString,
			)
			suite.R.Equal(
				kind.HasMessages(),
				bytes.Contains(jsonBytes, []byte(`"start_message"`)),
				jsonString,
			)
			suite.R.Equal(
				kind.HasMessages(),
				bytes.Contains(jsonBytes, []byte(`"end_message"`)),
				jsonString,
			)
		},
	)
}

func (suite *EndToEndTestSuite) TestEncodeDecode_Script() {
	jsonBytes, err := DecodeScript(suite.ScriptBytes)
	suite.R.NoError(err)
	resultBytes, err := EncodeScript(jsonBytes)
	suite.R.NoError(err)
	suite.R.Equal(suite.ScriptBytes, resultBytes)
}

func (suite *EndToEndTestSuite) TestDecodeScript_RecordShape() {
	jsonBytes, err := DecodeScript(suite.ScriptBytes)
	suite.R.NoError(err)

	document := ScriptDocument{}
	suite.R.NoError(json.Unmarshal(jsonBytes, &document))
	suite.R.Len(document.Triggers, 2)
	suite.R.Len(document.Triggers[0].Conditions, 2)
	suite.R.Len(document.Triggers[0].Actions, 2)

	// "type" must lead every record object so the documents stay readable
	lo.ForEach(
		document.Triggers,
		func(trigger TriggerDocument, _ int) {
			raws := append(trigger.Conditions, trigger.Actions...)
			lo.ForEach(
				raws,
				func(raw json.RawMessage, _ int) {
					decoder := json.NewDecoder(bytes.NewReader(raw))
					_, err := decoder.Token()
					suite.R.NoError(err)
					keyToken, err := decoder.Token()
					suite.R.NoError(err)
					suite.R.Equal("type", keyToken)
				},
			)
		},
	)

	jsonString := string(jsonBytes)
	lo.ForEach(
		[]string{
			"check_zone_time", "check_health_percent",
			"check_random_chance", "check_target_distance",
			"say", "cast_spell", "move_to", "wait",
		},
		func(name string, _ int) {
			suite.R.Contains(jsonString, fmt.Sprintf(`"type": "%s"`, name))
		},
	)
}

func (suite *EndToEndTestSuite) TestConvert_BothDirections() {
	fileBytesSlices := append([][]byte{}, suite.TableByteSlices...)
	fileBytesSlices = append(fileBytesSlices, suite.ScriptBytes)
	lo.ForEach(
		fileBytesSlices,
		func(fileBytes []byte, index int) {
			jsonBytes, err := Convert(fileBytes)
			suite.R.NoErrorf(err, "file %d", index)
			suite.R.Equalf(FormatJSON, SniffFormat(jsonBytes), "file %d", index)
			resultBytes, err := Convert(jsonBytes)
			suite.R.NoErrorf(err, "file %d", index)
			suite.R.Equalf(fileBytes, resultBytes, "file %d", index)
		},
	)
}

func (suite *EndToEndTestSuite) TestConvert_UnrecognizedFormat() {
	_, err := Convert([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	suite.R.Error(err)
}

func (suite *EndToEndTestSuite) TestEncodeDocument_UnknownKeys() {
	_, err := EncodeDocument([]byte(`{"name": "unrelated"}`))
	suite.R.Error(err)
}

func TestEndToEnd(t *testing.T) {
	suite.Run(t, new(EndToEndTestSuite))
}
