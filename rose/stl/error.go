package stl

import (
	"fmt"
)

type (
	ErrUnknownKind struct {
		Identifier string
	}
	ErrKeyNotFound struct {
		Name string
	}
	ErrIndexOutOfRange struct {
		Index int
		Count int
	}
)

func (r ErrUnknownKind) Error() string {
	return fmt.Sprintf(
		`unknown table kind identifier "%s"`,
		r.Identifier,
	)
}

func (r ErrKeyNotFound) Error() string {
	return fmt.Sprintf(
		`no row keyed "%s"`,
		r.Name,
	)
}

func (r ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf(
		"index %d out of range for %d entries",
		r.Index, r.Count,
	)
}
