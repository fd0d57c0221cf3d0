package rbytes

import (
	"math"

	"github.com/pkg/errors"
)

// An OffsetTable is a run of 4-byte offset slots whose values are not known
// until the data they point at has been written. ReserveOffsets writes zero
// placeholders and records the run's base position; Resolve seeks back to the
// slots, writes the final absolute positions, and restores the cursor so the
// caller can keep appending where it left off.
type OffsetTable struct {
	base  int64
	count int
}

func ReserveOffsets(writer *Writer, count int) OffsetTable {
	table := OffsetTable{
		base:  writer.Position(),
		count: count,
	}
	for i := 0; i < count; i++ {
		writer.WriteInt(0)
	}
	return table
}

// Base returns the absolute position of the first reserved slot.
func (r OffsetTable) Base() int64 {
	return r.base
}

func (r OffsetTable) Resolve(writer *Writer, positions []int64) error {
	if len(positions) != r.count {
		return errors.Errorf(
			"Resolve error: reserved %d offset slots but received %d positions",
			r.count, len(positions),
		)
	}
	restore := writer.Position()
	if err := writer.SeekTo(r.base); err != nil {
		return errors.Wrap(err, "Resolve error: seek to reserved slots")
	}
	for _, position := range positions {
		if position > math.MaxInt32 {
			return ErrOffsetOverflow{Position: position}
		}
		writer.WriteInt(int32(position))
	}
	return writer.SeekTo(restore)
}
