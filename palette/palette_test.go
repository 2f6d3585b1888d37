package palette

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bodgit/sbrx/character"
	"github.com/bodgit/sbrx/rgb555"
	"github.com/bodgit/sbrx/rom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPacked() (p Packed) {
	for i := range p {
		p[i] = rgb555.Packed(i * 0x0843)
	}
	p[15] = 0x7fff
	return
}

func TestDecodeRaw(t *testing.T) {
	b := make([]byte, Size)
	b[0], b[1] = 0xff, 0x7f
	b[2], b[3] = 0x1f, 0x00
	b[30], b[31] = 0x00, 0x7c

	p, err := DecodeRaw(b)
	require.Nil(t, err)
	assert.Equal(t, rgb555.Packed(0x7fff), p[0])
	assert.Equal(t, rgb555.Packed(0x001f), p[1])
	assert.Equal(t, rgb555.Packed(0x7c00), p[15])

	_, err = DecodeRaw(b[:31])
	assert.Equal(t, ErrShortPalette, err)
}

func TestRawRoundTrip(t *testing.T) {
	p := testPacked()
	b := EncodeRaw(p)
	assert.Len(t, b, Size)

	q, err := DecodeRaw(b)
	require.Nil(t, err)
	assert.Equal(t, p, q)

	// And the other way
	assert.Equal(t, b, EncodeRaw(q))
}

func TestManager(t *testing.T) {
	m := NewManager()

	_, err := m.Load("Sonic")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = m.LoadColors("Sonic")
	assert.True(t, errors.Is(err, ErrNotFound))

	p := testPacked()
	m.Store("Sonic", p)

	q, err := m.Load("Sonic")
	require.Nil(t, err)
	assert.Equal(t, p, q)

	c, err := m.LoadColors("Sonic")
	require.Nil(t, err)
	assert.Equal(t, rgb555.Color{}, c[0])
	assert.Equal(t, rgb555.Color{R: 248, G: 248, B: 248}, c[15])

	// Decoded colors pack back to the same values
	assert.Equal(t, p, m.FromRGB(c))

	var colors Palette
	colors[1] = rgb555.Color{R: 255, G: 255, B: 255}
	m.StoreColors("Sonic", colors)
	q, err = m.Load("Sonic")
	require.Nil(t, err)
	assert.Equal(t, rgb555.Packed(0x7fff), q[1])
	assert.Equal(t, rgb555.Packed(0), q[2])
}

func TestPalette(t *testing.T) {
	var p Palette
	p[3] = rgb555.Color{R: 1, G: 2, B: 3}
	cp := p.Color()
	assert.Len(t, cp, Colors)
	assert.Equal(t, p[3], cp[3])
}

func TestReadWrite(t *testing.T) {
	d := &character.Descriptor{
		Name:          "Test",
		PaletteOffset: 0x10,
	}

	buf := rom.NewBuffer(make([]byte, 0x40))
	f := rom.New(buf)

	p := testPacked()
	m := NewManager()
	m.Store(d.Name, p)
	require.Nil(t, m.Write(f, d))

	assert.Equal(t, EncodeRaw(p), buf.Bytes()[0x10:0x30])
	assert.Equal(t, make([]byte, 0x10), buf.Bytes()[:0x10])

	n := NewManager()
	require.Nil(t, n.Read(f, d))
	q, err := n.Load(d.Name)
	require.Nil(t, err)
	assert.Equal(t, p, q)

	// Writing a palette that was never read or stored fails
	assert.True(t, errors.Is(n.Write(f, &character.Descriptor{Name: "Missing"}), ErrNotFound))

	// Truncated ROM
	short := rom.New(rom.NewBuffer(make([]byte, 0x20)))
	assert.NotNil(t, n.Read(short, d))
	assert.NotNil(t, n.Read(bytes.NewReader(nil), d))
}
