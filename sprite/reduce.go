package sprite

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/bodgit/sbrx/palette"
	"github.com/bodgit/sbrx/rgb555"
	"github.com/ericpauley/go-quantize/quantize"
)

// Reduce returns a copy of m where the colors that aren't markers have been
// reduced so they fit in a palette alongside the transparent color. Marker
// pixels are left untouched. If m already has few enough colors it is
// returned as is.
func Reduce(m image.Image) image.Image {
	b := m.Bounds()

	// Gather every pixel that isn't a marker into a strip so the markers
	// don't influence the quantized palette
	var pixels []rgb555.Color
	unique := make(map[rgb555.Color]struct{})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := rgb555.Convert(m.At(x, y))
			if IsMarker(c) {
				continue
			}
			pixels = append(pixels, c)
			unique[c] = struct{}{}
		}
	}

	if len(unique) < palette.Colors {
		return m
	}

	strip := image.NewRGBA(image.Rect(0, 0, len(pixels), 1))
	for i, c := range pixels {
		strip.SetRGBA(i, 0, rgba(c))
	}

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, palette.Colors-1), strip)

	dup := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dup, dup.Bounds(), m, b.Min, draw.Src)

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := rgb555.Convert(dup.At(x, y))
			if IsMarker(c) {
				continue
			}
			dup.Set(x, y, p.Convert(c))
		}
	}

	return dup
}
