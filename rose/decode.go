package rose

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rminderhoud/Revise/ds"
	"github.com/rminderhoud/Revise/rose/aip"
	"github.com/rminderhoud/Revise/rose/rbytes"
	"github.com/rminderhoud/Revise/rose/stl"
	"github.com/samber/lo"
)

// DecodeTable reads a binary string table and renders it as an indented
// JSON document.
func DecodeTable(bs []byte) ([]byte, error) {
	table, err := stl.Decode(rbytes.NewBytesReader(bs))
	if err != nil {
		return nil, errors.Wrap(err, "DecodeTable error")
	}
	document := TableDocument{
		Kind:          string(table.Kind()),
		LanguageCount: table.LanguageCount(),
		Rows: lo.Map(
			lo.Zip2(table.Keys(), table.Rows()),
			func(pair lo.Tuple2[stl.Key, stl.Row], _ int) TableRowDocument {
				rowDocument := TableRowDocument{
					Key:  pair.A.Name,
					ID:   pair.A.ID,
					Text: pair.B.Text,
				}
				if table.Kind().HasDescription() {
					rowDocument.Description = pair.B.Description
				}
				if table.Kind().HasMessages() {
					rowDocument.StartMessage = pair.B.StartMessage
					rowDocument.EndMessage = pair.B.EndMessage
				}
				return rowDocument
			},
		),
	}
	resultBytes, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "DecodeTable error: marshal document")
	}
	return resultBytes, nil
}

// DecodeScript reads a binary AI script and renders it as an indented
// JSON document.
func DecodeScript(bs []byte) ([]byte, error) {
	script, err := aip.Decode(rbytes.NewBytesReader(bs))
	if err != nil {
		return nil, errors.Wrap(err, "DecodeScript error")
	}
	document := ScriptDocument{
		Triggers: make([]TriggerDocument, 0, len(script.Triggers)),
	}
	for i, trigger := range script.Triggers {
		triggerDocument, err := marshalTrigger(trigger)
		if err != nil {
			return nil, errors.Wrapf(err, "DecodeScript error: trigger %d", i)
		}
		document.Triggers = append(document.Triggers, triggerDocument)
	}
	resultBytes, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "DecodeScript error: marshal document")
	}
	return resultBytes, nil
}

func marshalTrigger(trigger aip.Trigger) (TriggerDocument, error) {
	conditions, err := marshalRecords(aip.Conditions, trigger.Conditions)
	if err != nil {
		return TriggerDocument{}, errors.Wrap(err, "marshalTrigger error: conditions")
	}
	actions, err := marshalRecords(aip.Actions, trigger.Actions)
	if err != nil {
		return TriggerDocument{}, errors.Wrap(err, "marshalTrigger error: actions")
	}
	return TriggerDocument{
		Conditions: conditions,
		Actions:    actions,
	}, nil
}

func marshalRecords(registry *aip.Registry, records []aip.Record) ([]json.RawMessage, error) {
	raws := make([]json.RawMessage, 0, len(records))
	for i, record := range records {
		raw, err := marshalRecord(registry, record)
		if err != nil {
			return nil, errors.Wrapf(err, "marshalRecords error: record %d", i)
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

// marshalRecord renders a record as an object whose first key is "type",
// followed by the record's own fields in their declared order.
func marshalRecord(registry *aip.Registry, record aip.Record) (json.RawMessage, error) {
	name, err := registry.Name(record.Tag())
	if err != nil {
		return nil, errors.Wrap(err, "marshalRecord error")
	}
	fieldBytes, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "marshalRecord error: marshal fields")
	}
	lhm := ds.NewLinkedHashMap[string, any]()
	lhm.Put("type", name)
	decoder := json.NewDecoder(bytes.NewReader(fieldBytes))
	if _, err := decoder.Token(); err != nil {
		return nil, errors.Wrap(err, "marshalRecord error: read opening brace")
	}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, errors.Wrap(err, "marshalRecord error: read field key")
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, errors.Errorf(`marshalRecord error: unexpected field key "%v"`, keyToken)
		}
		value := json.RawMessage{}
		if err := decoder.Decode(&value); err != nil {
			return nil, errors.Wrapf(err, `marshalRecord error: read field "%s"`, key)
		}
		lhm.Put(key, value)
	}
	raw, err := lhm.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "marshalRecord error: marshal object")
	}
	return raw, nil
}
