package aip

import (
	"github.com/pkg/errors"
	"github.com/rminderhoud/Revise/rose/rbytes"
)

type (
	// CheckZoneTime passes while the zone clock reads between Minimum and
	// Maximum. The codec does not require Minimum <= Maximum; ordering is
	// the script author's business.
	CheckZoneTime struct {
		Minimum int32 `json:"minimum"`
		Maximum int32 `json:"maximum"`
	}

	// CheckHealthPercent passes while the owner's remaining health
	// percentage sits between Minimum and Maximum.
	CheckHealthPercent struct {
		Minimum int32 `json:"minimum"`
		Maximum int32 `json:"maximum"`
	}

	// CheckRandomChance passes Percent rolls out of a hundred.
	CheckRandomChance struct {
		Percent int32 `json:"percent"`
	}

	// CheckTargetDistance passes while the current target stays within
	// Maximum.
	CheckTargetDistance struct {
		Maximum int32 `json:"maximum"`
	}
)

func (r *CheckZoneTime) Tag() Tag {
	return TagCheckZoneTime
}

func (r *CheckZoneTime) DecodePayload(reader *rbytes.Reader) error {
	err := error(nil)
	if r.Minimum, err = reader.ReadInt(); err != nil {
		return errors.Wrap(err, "DecodePayload error: read CheckZoneTime.Minimum")
	}
	if r.Maximum, err = reader.ReadInt(); err != nil {
		return errors.Wrap(err, "DecodePayload error: read CheckZoneTime.Maximum")
	}
	return nil
}

func (r *CheckZoneTime) EncodePayload(writer *rbytes.Writer) {
	writer.WriteInt(r.Minimum)
	writer.WriteInt(r.Maximum)
}

func (r *CheckHealthPercent) Tag() Tag {
	return TagCheckHealthPercent
}

func (r *CheckHealthPercent) DecodePayload(reader *rbytes.Reader) error {
	err := error(nil)
	if r.Minimum, err = reader.ReadInt(); err != nil {
		return errors.Wrap(err, "DecodePayload error: read CheckHealthPercent.Minimum")
	}
	if r.Maximum, err = reader.ReadInt(); err != nil {
		return errors.Wrap(err, "DecodePayload error: read CheckHealthPercent.Maximum")
	}
	return nil
}

func (r *CheckHealthPercent) EncodePayload(writer *rbytes.Writer) {
	writer.WriteInt(r.Minimum)
	writer.WriteInt(r.Maximum)
}

func (r *CheckRandomChance) Tag() Tag {
	return TagCheckRandomChance
}

func (r *CheckRandomChance) DecodePayload(reader *rbytes.Reader) error {
	err := error(nil)
	if r.Percent, err = reader.ReadInt(); err != nil {
		return errors.Wrap(err, "DecodePayload error: read CheckRandomChance.Percent")
	}
	return nil
}

func (r *CheckRandomChance) EncodePayload(writer *rbytes.Writer) {
	writer.WriteInt(r.Percent)
}

func (r *CheckTargetDistance) Tag() Tag {
	return TagCheckTargetDistance
}

func (r *CheckTargetDistance) DecodePayload(reader *rbytes.Reader) error {
	err := error(nil)
	if r.Maximum, err = reader.ReadInt(); err != nil {
		return errors.Wrap(err, "DecodePayload error: read CheckTargetDistance.Maximum")
	}
	return nil
}

func (r *CheckTargetDistance) EncodePayload(writer *rbytes.Writer) {
	writer.WriteInt(r.Maximum)
}
