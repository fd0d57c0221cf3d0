package rbytes

import (
	"fmt"
)

type (
	ErrTruncated struct {
		Expected int
		Position int64
	}
	ErrInvalidOffset struct {
		Offset int64
		Size   int64
	}
	ErrOffsetOverflow struct {
		Position int64
	}
)

func (r ErrTruncated) Error() string {
	return fmt.Sprintf(
		"truncated data: expected %d more bytes at position %d",
		r.Expected, r.Position,
	)
}

func (r ErrInvalidOffset) Error() string {
	return fmt.Sprintf(
		"invalid offset %d for a stream of %d bytes",
		r.Offset, r.Size,
	)
}

func (r ErrOffsetOverflow) Error() string {
	return fmt.Sprintf(
		"position %d does not fit a 4-byte offset slot",
		r.Position,
	)
}
