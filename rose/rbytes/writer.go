package rbytes

import (
	"encoding/binary"
)

func NewWriter() *Writer {
	return &Writer{
		buf: make([]byte, 0),
	}
}

// Bytes returns the stream written so far. The slice is shared with the
// writer's internal buffer and stays valid until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Len() int {
	return len(w.buf)
}

// Position returns the cursor's absolute offset from the start of the stream.
func (w *Writer) Position() int64 {
	return int64(w.position)
}

// SeekTo moves the cursor to an absolute offset inside the written stream.
// Seeking to Len() is allowed and continues appending.
func (w *Writer) SeekTo(offset int64) error {
	if offset < 0 || offset > int64(len(w.buf)) {
		return ErrInvalidOffset{Offset: offset, Size: int64(len(w.buf))}
	}
	w.position = int(offset)
	return nil
}

// WriteBytes overwrites in place when the cursor sits inside the stream and
// grows the stream when it runs past the end.
func (w *Writer) WriteBytes(bs []byte) {
	n := copy(w.buf[w.position:], bs)
	if n < len(bs) {
		w.buf = append(w.buf, bs[n:]...)
	}
	w.position += len(bs)
}

func (w *Writer) WriteInt(value int32) {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, uint32(value))
	w.WriteBytes(bs)
}

// WriteString writes a length-prefixed string: an unsigned LEB128 byte count
// followed by the string's UTF-8 bytes.
func (w *Writer) WriteString(value string) {
	w.WriteBytes(binary.AppendUvarint(nil, uint64(len(value))))
	w.WriteBytes([]byte(value))
}
