package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/bodgit/sbrx/character"
	"github.com/bodgit/sbrx/palette"
	"github.com/bodgit/sbrx/rgb555"
)

// Marker colors are drawn in place of the transparent color and unused areas
// of a spritesheet image. They are never stored in a palette.
var (
	// MarkerEven is drawn for transparent pixels when the animation and
	// frame indices are both odd or both even
	MarkerEven = rgb555.Color{R: 255, G: 0, B: 255}
	// MarkerOdd is drawn for all other transparent pixels
	MarkerOdd = rgb555.Color{R: 185, G: 0, B: 255}
	// NoFrame fills the area below animations with fewer frames than the
	// longest animation
	NoFrame = rgb555.Color{R: 185, G: 0, B: 185}

	// Transparent is the initial color at index 0 of an imported palette
	Transparent = rgb555.Color{R: 0, G: 248, B: 248}
)

// ErrPaletteOverflow is returned when an image uses more colors than fit in
// a palette
var ErrPaletteOverflow = errors.New("sprite: too many colors")

// OverflowError records the position of the first pixel whose color did not
// fit in the palette
type OverflowError struct {
	X, Y int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("sprite: invalid color found at %d, %d", e.X, e.Y)
}

// Unwrap returns ErrPaletteOverflow
func (e *OverflowError) Unwrap() error {
	return ErrPaletteOverflow
}

// IsMarker reports whether c is one of the marker colors
func IsMarker(c rgb555.Color) bool {
	return c == MarkerEven || c == MarkerOdd || c == NoFrame
}

func rgba(c rgb555.Color) color.RGBA {
	c = c.Clamp()
	return color.RGBA{uint8(c.R), uint8(c.G), uint8(c.B), 0xff}
}

// Image draws the spritesheet using the palette p. Each animation is drawn
// as a column of frames, left to right.
func (s Spritesheet) Image(p *palette.Palette) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, FramePixels*len(s), FramePixels*s.MaxFrames()))
	draw.Draw(m, m.Bounds(), image.NewUniform(rgba(NoFrame)), image.Point{}, draw.Src)

	var colors [palette.Colors]color.RGBA
	for i, c := range p {
		colors[i] = rgba(c)
	}

	for ai, a := range s {
		for fi := range a {
			f := &a[fi]

			marker := rgba(MarkerOdd)
			if (ai%2 == 0) == (fi%2 == 0) {
				marker = rgba(MarkerEven)
			}

			for si := range f {
				for y, row := range f[si] {
					for x, v := range row {
						ix := x + si%FrameSize*SectionSize + FramePixels*ai
						iy := y + si/FrameSize*SectionSize + FramePixels*fi

						c := marker
						if v != 0 {
							c = colors[v&0x0f]
						}
						m.SetRGBA(ix, iy, c)
					}
				}
			}
		}
	}

	return m
}

// Image draws the frame on its own using the palette p. Index 0 is drawn as
// p[0] rather than a marker color.
func (f *Frame) Image(p *palette.Palette) *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, FramePixels, FramePixels), p.Color())
	for y := 0; y < FramePixels; y++ {
		for x := 0; x < FramePixels; x++ {
			m.SetColorIndex(x, y, f.At(x, y)&0x0f)
		}
	}
	return m
}

// Images draws every frame of the animation using the palette p
func (a Animation) Images(p *palette.Palette) []*image.Paletted {
	images := make([]*image.Paletted, len(a))
	for i := range a {
		images[i] = a[i].Image(p)
	}
	return images
}

// FromImage converts an image laid out as Image draws it back into a
// spritesheet and palette. The number of animations and frames is taken from
// d rather than the image dimensions. Marker colors become index 0 and every
// other color is assigned the next free palette index in the order it is
// first seen. Unused palette entries are black.
func FromImage(m image.Image, d *character.Descriptor) (Spritesheet, palette.Palette, error) {
	var p palette.Palette

	b := m.Bounds()
	s := make(Spritesheet, len(d.Frames))

	colors := []rgb555.Color{Transparent}
	index := map[rgb555.Color]uint8{Transparent: 0}

	for ai, frames := range d.Frames {
		s[ai] = make(Animation, frames)
		for fi := range s[ai] {
			f := &s[ai][fi]
			for sy := 0; sy < FrameSize; sy++ {
				for sx := 0; sx < FrameSize; sx++ {
					sec := &f[sy*FrameSize+sx]
					for y := 0; y < SectionSize; y++ {
						for x := 0; x < SectionSize; x++ {
							ix := b.Min.X + sx*SectionSize + x + FramePixels*ai
							iy := b.Min.Y + sy*SectionSize + y + FramePixels*fi

							c := rgb555.Convert(m.At(ix, iy))
							if IsMarker(c) {
								continue
							}

							v, ok := index[c]
							if !ok {
								if len(colors) == palette.Colors {
									return nil, p, &OverflowError{ix, iy}
								}
								v = uint8(len(colors))
								colors = append(colors, c)
								index[c] = v
							}
							sec[y][x] = v
						}
					}
				}
			}
		}
	}

	// Anything not assigned stays black
	copy(p[:], colors)

	return s, p, nil
}
