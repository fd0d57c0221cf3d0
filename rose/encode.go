package rose

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rminderhoud/Revise/rose/aip"
	"github.com/rminderhoud/Revise/rose/rbytes"
	"github.com/rminderhoud/Revise/rose/stl"
)

// EncodeDocument encodes a JSON document to whichever binary format its
// top-level keys call for: "kind" means a string table, "triggers" means
// an AI script.
func EncodeDocument(bs []byte) ([]byte, error) {
	probe := struct {
		Kind     *string          `json:"kind"`
		Triggers *json.RawMessage `json:"triggers"`
	}{}
	if err := json.Unmarshal(bs, &probe); err != nil {
		return nil, errors.Wrap(err, "EncodeDocument error: parse document")
	}
	switch {
	case probe.Kind != nil:
		return EncodeTable(bs)
	case probe.Triggers != nil:
		return EncodeScript(bs)
	}
	return nil, errors.New(`EncodeDocument error: neither "kind" nor "triggers" present`)
}

// EncodeTable encodes a JSON table document to binary string table bytes.
func EncodeTable(bs []byte) ([]byte, error) {
	document := TableDocument{}
	if err := json.Unmarshal(bs, &document); err != nil {
		return nil, errors.Wrap(err, "EncodeTable error: parse document")
	}
	if document.LanguageCount < 0 {
		return nil, errors.Errorf(
			"EncodeTable error: negative language count %d",
			document.LanguageCount,
		)
	}
	table := stl.NewWithLanguageCount(stl.Kind(document.Kind), document.LanguageCount)
	for index, rowDocument := range document.Rows {
		table.AddRow(rowDocument.Key, rowDocument.ID)
		if err := setRowFields(table, index, rowDocument); err != nil {
			return nil, errors.Wrapf(err, "EncodeTable error: row %d", index)
		}
	}
	writer := rbytes.NewWriter()
	if err := table.Encode(writer); err != nil {
		return nil, errors.Wrap(err, "EncodeTable error")
	}
	return writer.Bytes(), nil
}

func setRowFields(table *stl.Table, index int, rowDocument TableRowDocument) error {
	for j, value := range rowDocument.Text {
		if err := table.SetText(index, stl.Language(j), value); err != nil {
			return err
		}
	}
	for j, value := range rowDocument.Description {
		if err := table.SetDescription(index, stl.Language(j), value); err != nil {
			return err
		}
	}
	for j, value := range rowDocument.StartMessage {
		if err := table.SetStartMessage(index, stl.Language(j), value); err != nil {
			return err
		}
	}
	for j, value := range rowDocument.EndMessage {
		if err := table.SetEndMessage(index, stl.Language(j), value); err != nil {
			return err
		}
	}
	return nil
}

// EncodeScript encodes a JSON script document to binary AI script bytes.
func EncodeScript(bs []byte) ([]byte, error) {
	document := ScriptDocument{}
	if err := json.Unmarshal(bs, &document); err != nil {
		return nil, errors.Wrap(err, "EncodeScript error: parse document")
	}
	script := aip.Script{
		Triggers: make([]aip.Trigger, 0, len(document.Triggers)),
	}
	for i, triggerDocument := range document.Triggers {
		trigger, err := unmarshalTrigger(triggerDocument)
		if err != nil {
			return nil, errors.Wrapf(err, "EncodeScript error: trigger %d", i)
		}
		script.Triggers = append(script.Triggers, *trigger)
	}
	writer := rbytes.NewWriter()
	aip.Encode(writer, script)
	return writer.Bytes(), nil
}

func unmarshalTrigger(document TriggerDocument) (*aip.Trigger, error) {
	conditions, err := unmarshalRecords(aip.Conditions, document.Conditions)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshalTrigger error: conditions")
	}
	actions, err := unmarshalRecords(aip.Actions, document.Actions)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshalTrigger error: actions")
	}
	return &aip.Trigger{
		Conditions: conditions,
		Actions:    actions,
	}, nil
}

func unmarshalRecords(registry *aip.Registry, raws []json.RawMessage) ([]aip.Record, error) {
	records := make([]aip.Record, 0, len(raws))
	for i, raw := range raws {
		record, err := unmarshalRecord(registry, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "unmarshalRecords error: record %d", i)
		}
		records = append(records, record)
	}
	return records, nil
}

// unmarshalRecord reads the object's "type" key, asks the registry for a
// fresh record of that name, and fills the record's fields from the same
// object.
func unmarshalRecord(registry *aip.Registry, raw json.RawMessage) (aip.Record, error) {
	typed := struct {
		Type string `json:"type"`
	}{}
	if err := json.Unmarshal(raw, &typed); err != nil {
		return nil, errors.Wrap(err, `unmarshalRecord error: read "type"`)
	}
	record, err := registry.Create(typed.Type)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshalRecord error")
	}
	if err := json.Unmarshal(raw, record); err != nil {
		return nil, errors.Wrapf(err, `unmarshalRecord error: read "%s" fields`, typed.Type)
	}
	return record, nil
}
