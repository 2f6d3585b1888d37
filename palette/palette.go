/*
Package palette implements the 16 color palettes used by character sprites.

Each palette is stored in the ROM as 32 bytes; sixteen 15-bit packed colors,
each held in a little-endian 16-bit word. Index 0 is the transparent color.
*/
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/bodgit/sbrx/character"
	"github.com/bodgit/sbrx/rgb555"
)

const (
	// Colors is the number of colors in a palette
	Colors = 16

	// Size is the size in bytes of a palette in the ROM
	Size = Colors * 2
)

var (
	// ErrNotFound is returned when no palette is stored for a character
	ErrNotFound = errors.New("palette: not found")

	// ErrShortPalette is returned when decoding a palette from the wrong
	// number of bytes
	ErrShortPalette = errors.New("palette: incorrect length")
)

// Packed is a palette in its ROM representation
type Packed [Colors]rgb555.Packed

// Palette is a palette of RGB colors
type Palette [Colors]rgb555.Color

// Color returns the palette as a color.Palette
func (p *Palette) Color() color.Palette {
	cp := make(color.Palette, Colors)
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

// DecodeRaw decodes the 32 byte ROM representation of a palette
func DecodeRaw(b []byte) (Packed, error) {
	var p Packed
	if len(b) != Size {
		return p, ErrShortPalette
	}
	for i := range p {
		p[i] = rgb555.Packed(b[i<<1]) | rgb555.Packed(b[i<<1+1])<<8
	}
	return p, nil
}

// EncodeRaw encodes a palette into its 32 byte ROM representation. It is the
// exact inverse of DecodeRaw.
func EncodeRaw(p Packed) []byte {
	b := make([]byte, Size)
	for i, c := range p {
		b[i<<1] = byte(c)
		b[i<<1+1] = byte(c >> 8)
	}
	return b
}

// Manager stores the palette for each character by name. It is safe for
// concurrent use.
type Manager struct {
	mu       sync.Mutex
	codec    *rgb555.Codec
	palettes map[string]Packed
}

// NewManager returns an empty Manager
func NewManager() *Manager {
	return &Manager{
		codec:    rgb555.NewCodec(),
		palettes: make(map[string]Packed),
	}
}

// ToRGB converts a packed palette to RGB colors
func (m *Manager) ToRGB(p Packed) (c Palette) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, v := range p {
		c[i] = m.codec.Decode(v)
	}
	return
}

// FromRGB converts a palette of RGB colors to packed colors
func (m *Manager) FromRGB(c Palette) (p Packed) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, v := range c {
		p[i] = m.codec.Encode(v)
	}
	return
}

// Store sets the palette for the named character, replacing any existing
// palette
func (m *Manager) Store(name string, p Packed) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.palettes[name] = p
}

// StoreColors converts c and stores it as the palette for the named
// character
func (m *Manager) StoreColors(name string, c Palette) {
	m.Store(name, m.FromRGB(c))
}

// Load returns the palette for the named character
func (m *Manager) Load(name string) (Packed, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.palettes[name]
	if !ok {
		return p, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return p, nil
}

// LoadColors returns the palette for the named character as RGB colors
func (m *Manager) LoadColors(name string) (Palette, error) {
	p, err := m.Load(name)
	if err != nil {
		return Palette{}, err
	}
	return m.ToRGB(p), nil
}

// Read reads the palette for a character from the ROM and stores it
func (m *Manager) Read(r io.ReaderAt, d *character.Descriptor) error {
	var b [Size]byte
	if _, err := r.ReadAt(b[:], d.PaletteOffset); err != nil {
		return err
	}

	p, err := DecodeRaw(b[:])
	if err != nil {
		return err
	}
	m.Store(d.Name, p)

	return nil
}

// Write writes the stored palette for a character back to the ROM
func (m *Manager) Write(w io.WriterAt, d *character.Descriptor) error {
	p, err := m.Load(d.Name)
	if err != nil {
		return err
	}

	_, err = w.WriteAt(EncodeRaw(p), d.PaletteOffset)
	return err
}
