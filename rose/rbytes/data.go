// Package rbytes implements the byte-level primitives shared by the file
// codecs: little-endian 4-byte integers, length-prefixed strings, absolute
// seeking with bounds validation, and reserve-then-backfill offset slots.
package rbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
	Writer struct {
		buf      []byte
		position int
	}
)
