package aip

import (
	"fmt"
)

type (
	ErrUnknownTag struct {
		Tag Tag
	}
	ErrUnknownTypeName struct {
		Name string
	}
)

func (r ErrUnknownTag) Error() string {
	return fmt.Sprintf(
		"no record variant registered for tag %d",
		r.Tag,
	)
}

func (r ErrUnknownTypeName) Error() string {
	return fmt.Sprintf(
		`no record variant registered under "%s"`,
		r.Name,
	)
}
