/*
Package rgb555 implements conversion between the 15-bit packed colors used by
the GBA and 24-bit RGB colors.

A packed color stores five bits per channel with red in bits 0-4, green in
bits 5-9 and blue in bits 10-14. Conversion in either direction is lossy and
the two directions are not exact inverses.
*/
package rgb555

import "image/color"

const (
	mask5 = 0x1f

	// MaxPacked is the largest meaningful packed value
	MaxPacked Packed = 0x7fff

	// 24/15 is integer division so each step is exactly 8
	scale = 8 * (24 / 15)
)

// Packed is a 15-bit packed color. Only the low 15 bits are meaningful.
type Packed uint32

// Color is a 24-bit RGB color. Channels are nominally 0-255 but arithmetic
// may leave them out of range; use Clamp before treating one as a pixel.
// Color implements the color.Color interface and is always opaque.
type Color struct {
	R, G, B int
}

func clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	}
	return v
}

// Clamp returns c with each channel limited to 0-255.
func (c Color) Clamp() Color {
	return Color{clamp(c.R), clamp(c.G), clamp(c.B)}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	c = c.Clamp()
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// Model converts any color.Color to a Color, discarding alpha.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color{int(r >> 8), int(g >> 8), int(b >> 8)}
})

// Convert returns c as a Color.
func Convert(c color.Color) Color {
	return Model.Convert(c).(Color)
}

// Codec converts between packed and RGB colors, remembering every value it
// has converted. A Codec is not safe for concurrent use.
type Codec struct {
	fromCache map[Packed]Color
	toCache   map[Color]Packed
}

// NewCodec returns a Codec with empty caches.
func NewCodec() *Codec {
	return &Codec{
		fromCache: make(map[Packed]Color),
		toCache:   make(map[Color]Packed),
	}
}

// Decode returns the RGB color for the packed value p.
func (c *Codec) Decode(p Packed) Color {
	if v, ok := c.fromCache[p]; ok {
		return v
	}

	v := Color{
		R: int(p>>0&mask5) * scale,
		G: int(p>>5&mask5) * scale,
		B: int(p>>10&mask5) * scale,
	}
	c.fromCache[p] = v
	return v
}

// ceil8 returns v/8 rounded towards positive infinity
func ceil8(v int) int {
	if v <= 0 {
		return -(-v / 8)
	}
	return (v + 7) / 8
}

// Encode returns the packed value for the RGB color v.
func (c *Codec) Encode(v Color) Packed {
	if p, ok := c.toCache[v]; ok {
		return p
	}

	r := min(mask5, ceil8(v.R))
	g := min(mask5, ceil8(v.G))
	b := min(mask5, ceil8(v.B))

	p := Packed(min(int(MaxPacked), b*0x400+g*0x20+r))
	c.toCache[v] = p
	return p
}

// Len returns the number of cached packed to RGB and RGB to packed
// conversions.
func (c *Codec) Len() (int, int) {
	return len(c.fromCache), len(c.toCache)
}
