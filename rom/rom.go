/*
Package rom provides serialised access to a ROM image so that several
readers and writers can share the same underlying file handle.
*/
package rom

import (
	"io"
	"os"
	"sync"

	"github.com/ulikunitz/xz"
)

// File wraps an io.ReadWriteSeeker. Each ReadAt or WriteAt call seeks and
// then transfers a contiguous span while holding a lock, so calls from
// different goroutines never interleave. File implements io.ReaderAt and
// io.WriterAt.
type File struct {
	mu sync.Mutex
	rw io.ReadWriteSeeker
	c  io.Closer
}

// New returns a File wrapping rw
func New(rw io.ReadWriteSeeker) *File {
	f := &File{rw: rw}
	if c, ok := rw.(io.Closer); ok {
		f.c = c
	}
	return f
}

// Open opens the named ROM for reading and writing
func Open(name string) (*File, error) {
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return New(f), nil
}

// ReadAt reads len(b) bytes starting at offset off
func (f *File) ReadAt(b []byte, off int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.rw.Seek(off, io.SeekStart); err != nil {
		return 0, err
	}

	return io.ReadFull(f.rw, b)
}

// WriteAt writes b starting at offset off
func (f *File) WriteAt(b []byte, off int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.rw.Seek(off, io.SeekStart); err != nil {
		return 0, err
	}

	return f.rw.Write(b)
}

// Backup writes an xz compressed copy of the whole ROM to w
func (f *File) Backup(w io.Writer) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.rw.Seek(0, io.SeekStart); err != nil {
		return err
	}

	return Backup(w, f.rw)
}

// Restore replaces the whole ROM with the backup made by Backup read from r
func (f *File) Restore(r io.Reader) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.rw.Seek(0, io.SeekStart); err != nil {
		return err
	}

	if err := Restore(f.rw, r); err != nil {
		return err
	}

	// Drop anything left over from a larger ROM
	if t, ok := f.rw.(interface{ Truncate(int64) error }); ok {
		n, err := f.rw.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}
		return t.Truncate(n)
	}

	return nil
}

// Close closes the underlying file, if it can be closed
func (f *File) Close() error {
	if f.c == nil {
		return nil
	}
	return f.c.Close()
}

// Backup xz compresses everything read from r and writes it to w
func Backup(w io.Writer, r io.Reader) error {
	xw, err := xz.NewWriter(w)
	if err != nil {
		return err
	}

	if _, err := io.Copy(xw, r); err != nil {
		xw.Close()
		return err
	}

	return xw.Close()
}

// Restore decompresses a backup made with Backup from r into w
func Restore(w io.Writer, r io.Reader) error {
	xr, err := xz.NewReader(r)
	if err != nil {
		return err
	}

	_, err = io.Copy(w, xr)
	return err
}
