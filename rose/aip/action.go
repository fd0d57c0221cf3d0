package aip

import (
	"github.com/pkg/errors"
	"github.com/rminderhoud/Revise/rose/rbytes"
)

type (
	// Say has the owner speak Message in local chat.
	Say struct {
		Message string `json:"message"`
	}

	// MoveTo orders a move towards the point (X, Y).
	MoveTo struct {
		X int32 `json:"x"`
		Y int32 `json:"y"`
	}

	CastSpell struct {
		SpellID int32 `json:"spell_id"`
	}

	Wait struct {
		Duration int32 `json:"duration"`
	}
)

func (r *Say) Tag() Tag {
	return TagSay
}

func (r *Say) DecodePayload(reader *rbytes.Reader) error {
	err := error(nil)
	if r.Message, err = reader.ReadString(); err != nil {
		return errors.Wrap(err, "DecodePayload error: read Say.Message")
	}
	return nil
}

func (r *Say) EncodePayload(writer *rbytes.Writer) {
	writer.WriteString(r.Message)
}

func (r *MoveTo) Tag() Tag {
	return TagMoveTo
}

func (r *MoveTo) DecodePayload(reader *rbytes.Reader) error {
	err := error(nil)
	if r.X, err = reader.ReadInt(); err != nil {
		return errors.Wrap(err, "DecodePayload error: read MoveTo.X")
	}
	if r.Y, err = reader.ReadInt(); err != nil {
		return errors.Wrap(err, "DecodePayload error: read MoveTo.Y")
	}
	return nil
}

func (r *MoveTo) EncodePayload(writer *rbytes.Writer) {
	writer.WriteInt(r.X)
	writer.WriteInt(r.Y)
}

func (r *CastSpell) Tag() Tag {
	return TagCastSpell
}

func (r *CastSpell) DecodePayload(reader *rbytes.Reader) error {
	err := error(nil)
	if r.SpellID, err = reader.ReadInt(); err != nil {
		return errors.Wrap(err, "DecodePayload error: read CastSpell.SpellID")
	}
	return nil
}

func (r *CastSpell) EncodePayload(writer *rbytes.Writer) {
	writer.WriteInt(r.SpellID)
}

func (r *Wait) Tag() Tag {
	return TagWait
}

func (r *Wait) DecodePayload(reader *rbytes.Reader) error {
	err := error(nil)
	if r.Duration, err = reader.ReadInt(); err != nil {
		return errors.Wrap(err, "DecodePayload error: read Wait.Duration")
	}
	return nil
}

func (r *Wait) EncodePayload(writer *rbytes.Writer) {
	writer.WriteInt(r.Duration)
}
