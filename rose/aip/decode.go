package aip

import (
	"github.com/pkg/errors"
	"github.com/rminderhoud/Revise/rose/rbytes"
)

// Decode reads a whole script from reader. Decoding stops at the declared
// trigger count; trailing bytes are left untouched. Any failure returns nil
// rather than a partial script.
func Decode(reader *rbytes.Reader) (*Script, error) {
	triggerCount, err := reader.ReadInt()
	if err != nil {
		return nil, errors.Wrap(err, "Decode error: read trigger count")
	}
	if triggerCount < 0 {
		return nil, errors.Errorf("Decode error: negative trigger count %d", triggerCount)
	}
	// even an empty trigger takes eight bytes for its two stream counts
	if int64(triggerCount)*8 > int64(reader.Len()) {
		return nil, rbytes.ErrTruncated{Expected: int(triggerCount) * 8, Position: reader.Position()}
	}

	triggers := make([]Trigger, 0, triggerCount)
	for i := 0; i < int(triggerCount); i++ {
		trigger, err := DecodeTrigger(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "Decode error: trigger %d", i)
		}
		triggers = append(triggers, *trigger)
	}

	return &Script{Triggers: triggers}, nil
}

// DecodeTrigger reads one trigger: a condition stream followed by an action
// stream.
func DecodeTrigger(reader *rbytes.Reader) (*Trigger, error) {
	conditions, err := DecodeRecords(reader, Conditions)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeTrigger error: conditions")
	}
	actions, err := DecodeRecords(reader, Actions)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeTrigger error: actions")
	}
	return &Trigger{
		Conditions: conditions,
		Actions:    actions,
	}, nil
}

// DecodeRecords reads one record stream: a count, then that many tagged
// records back to back with no offset indirection.
func DecodeRecords(reader *rbytes.Reader, registry *Registry) ([]Record, error) {
	count, err := reader.ReadInt()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeRecords error: read record count")
	}
	if count < 0 {
		return nil, errors.Errorf("DecodeRecords error: negative record count %d", count)
	}
	// a record's tag alone takes four bytes, so a count past that bound can
	// never be satisfied by the remaining stream
	if int64(count)*4 > int64(reader.Len()) {
		return nil, rbytes.ErrTruncated{Expected: int(count) * 4, Position: reader.Position()}
	}

	records := make([]Record, 0, count)
	for i := 0; i < int(count); i++ {
		record, err := registry.Decode(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "DecodeRecords error: record %d", i)
		}
		records = append(records, record)
	}

	return records, nil
}
