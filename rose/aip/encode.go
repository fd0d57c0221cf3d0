package aip

import (
	"github.com/rminderhoud/Revise/rose/rbytes"
)

// Encode writes a whole script to writer.
func Encode(writer *rbytes.Writer, script Script) {
	writer.WriteInt(int32(len(script.Triggers)))
	for _, trigger := range script.Triggers {
		EncodeTrigger(writer, trigger)
	}
}

// EncodeTrigger writes one trigger: its condition stream, then its action
// stream.
func EncodeTrigger(writer *rbytes.Writer, trigger Trigger) {
	EncodeRecords(writer, Conditions, trigger.Conditions)
	EncodeRecords(writer, Actions, trigger.Actions)
}

// EncodeRecords writes one record stream: a count, then the tagged records
// back to back.
func EncodeRecords(writer *rbytes.Writer, registry *Registry, records []Record) {
	writer.WriteInt(int32(len(records)))
	for _, record := range records {
		registry.Encode(writer, record)
	}
}
