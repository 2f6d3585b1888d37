package rom

import (
	"errors"
	"io"
)

var errNegativeOffset = errors.New("rom: negative offset")

// Buffer is an in-memory io.ReadWriteSeeker. Writes past the end grow the
// buffer.
type Buffer struct {
	b   []byte
	off int64
}

// NewBuffer returns a Buffer using b as its initial contents
func NewBuffer(b []byte) *Buffer {
	return &Buffer{b: b}
}

// Bytes returns the current contents of the buffer
func (b *Buffer) Bytes() []byte {
	return b.b
}

func (b *Buffer) Read(p []byte) (int, error) {
	if b.off >= int64(len(b.b)) {
		return 0, io.EOF
	}
	n := copy(p, b.b[b.off:])
	b.off += int64(n)
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	if end := b.off + int64(len(p)); end > int64(len(b.b)) {
		b.b = append(b.b, make([]byte, end-int64(len(b.b)))...)
	}
	n := copy(b.b[b.off:], p)
	b.off += int64(n)
	return n, nil
}

// Seek implements the io.Seeker interface
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.off + offset
	case io.SeekEnd:
		abs = int64(len(b.b)) + offset
	default:
		return 0, errors.New("rom: invalid whence")
	}
	if abs < 0 {
		return 0, errNegativeOffset
	}
	b.off = abs
	return abs, nil
}
