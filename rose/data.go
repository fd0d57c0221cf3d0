// Package rose converts the game's binary data files, string tables and AI
// scripts both, to editable JSON documents and back.
package rose

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rminderhoud/Revise/rose/aip"
	"github.com/rminderhoud/Revise/rose/rbytes"
	"github.com/rminderhoud/Revise/rose/stl"
)

type (
	// Format names what a byte slice appears to hold.
	Format string

	// TableDocument is the JSON rendition of a string table. Only the
	// fields the table's kind carries appear on its rows.
	TableDocument struct {
		Kind          string             `json:"kind"`
		LanguageCount int                `json:"language_count"`
		Rows          []TableRowDocument `json:"rows"`
	}
	TableRowDocument struct {
		Key          string   `json:"key"`
		ID           int32    `json:"id"`
		Text         []string `json:"text"`
		Description  []string `json:"description,omitempty"`
		StartMessage []string `json:"start_message,omitempty"`
		EndMessage   []string `json:"end_message,omitempty"`
	}

	// ScriptDocument is the JSON rendition of an AI script. Records keep
	// their registry name in a leading "type" key.
	ScriptDocument struct {
		Triggers []TriggerDocument `json:"triggers"`
	}
	TriggerDocument struct {
		Conditions []json.RawMessage `json:"conditions"`
		Actions    []json.RawMessage `json:"actions"`
	}
)

const (
	FormatTable   = Format("table")
	FormatScript  = Format("script")
	FormatJSON    = Format("json")
	FormatUnknown = Format("unknown")
)

// SniffFormat guesses what bs holds so a caller can pick a conversion
// direction without asking.
func SniffFormat(bs []byte) Format {
	if isTableFile(bs) {
		return FormatTable
	}
	if isJSONFile(bs) {
		return FormatJSON
	}
	if isScriptFile(bs) {
		return FormatScript
	}
	return FormatUnknown
}

func isTableFile(bs []byte) bool {
	identifier, err := rbytes.NewBytesReader(bs).ReadString()
	if err != nil {
		return false
	}
	_, err = stl.KindFromIdentifier(identifier)
	return err == nil
}

func isJSONFile(bs []byte) bool {
	trimmed := bytes.TrimLeft(bs, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// isScriptFile runs the real decoder: script files carry no magic number,
// and the parse is bounded by the input size.
func isScriptFile(bs []byte) bool {
	_, err := aip.Decode(rbytes.NewBytesReader(bs))
	return err == nil
}

// Convert translates bs in whichever direction its sniffed format calls
// for: binary files become JSON documents, JSON documents become binary.
func Convert(bs []byte) ([]byte, error) {
	switch SniffFormat(bs) {
	case FormatTable:
		return DecodeTable(bs)
	case FormatScript:
		return DecodeScript(bs)
	case FormatJSON:
		return EncodeDocument(bs)
	}
	return nil, errors.New("Convert error: unrecognized file format")
}
