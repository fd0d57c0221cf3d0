package rbytes

import (
	"bytes"
	"encoding/binary"
	"io"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// Position returns the cursor's absolute offset from the start of the stream.
func (r *Reader) Position() int64 {
	return r.Size() - int64(r.Len())
}

// SeekTo moves the cursor to an absolute offset. The offset is validated
// against the stream bounds before the seek happens, so a corrupt offset
// surfaces as ErrInvalidOffset instead of an opaque I/O fault further on.
func (r *Reader) SeekTo(offset int64) error {
	if offset < 0 || offset > r.Size() {
		return ErrInvalidOffset{Offset: offset, Size: r.Size()}
	}
	_, err := r.Seek(offset, io.SeekStart)
	return err
}

func (r *Reader) ReadInt() (int32, error) {
	bs, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	result := binary.LittleEndian.Uint32(bs)
	return int32(result), nil
}

func (r *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// return early to avoid an EOF error when the cursor rests at the end
	// of the stream while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	position := r.Position()
	if _, err := io.ReadFull(&r.Reader, bs); err != nil {
		return nil, ErrTruncated{Expected: n, Position: position}
	}
	return bs, nil
}

// ReadString reads a length-prefixed string: an unsigned LEB128 byte count
// followed by that many UTF-8 bytes.
func (r *Reader) ReadString() (string, error) {
	position := r.Position()
	length, err := binary.ReadUvarint(&r.Reader)
	if err != nil {
		return "", ErrTruncated{Expected: 1, Position: position}
	}
	if length > uint64(r.Len()) {
		return "", ErrTruncated{Expected: int(length), Position: r.Position()}
	}
	bs, err := r.ReadBytes(int(length))
	if err != nil {
		return "", err
	}
	return string(bs), nil
}
