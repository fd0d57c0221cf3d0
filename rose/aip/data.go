// Package aip reads and writes AI script files: triggers holding counted
// streams of tagged condition and action records, dispatched through a
// per-kind registry.
package aip

import (
	"github.com/rminderhoud/Revise/rose/rbytes"
)

type (
	// Tag discriminates record variants. Condition and action tags occupy
	// independent value spaces.
	Tag int32

	// Record is one tagged entry of a condition or action stream. A record
	// owns its payload layout; the surrounding tag is the registry's
	// business.
	Record interface {
		Tag() Tag
		DecodePayload(reader *rbytes.Reader) error
		EncodePayload(writer *rbytes.Writer)
	}

	// Trigger pairs the conditions to check with the actions to run once
	// they all hold.
	Trigger struct {
		Conditions []Record
		Actions    []Record
	}

	// Script is an ordered list of triggers evaluated top to bottom.
	Script struct {
		Triggers []Trigger
	}
)

const (
	TagCheckZoneTime Tag = iota + 1
	TagCheckHealthPercent
	TagCheckRandomChance
	TagCheckTargetDistance
)

const (
	TagSay Tag = iota + 1
	TagMoveTo
	TagCastSpell
	TagWait
)
