package sbrx

import (
	"bytes"
	"image"
	"image/gif"
	"testing"

	"github.com/bodgit/sbrx/palette"
	"github.com/bodgit/sbrx/rgb555"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tables := map[string]struct {
		file   string
		format string
		err    error
	}{
		"png":     {"Sonic.png", FormatPNG, nil},
		"upper":   {"/tmp/Sonic.PNG", FormatPNG, nil},
		"gif":     {"Sonic.gif", FormatGIF, nil},
		"bmp":     {"dir/Sonic.bmp", FormatBMP, nil},
		"jpeg":    {"Sonic.jpg", "", ErrUnknownFormat},
		"missing": {"Sonic", "", ErrUnknownFormat},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			format, err := FormatFromPath(table.file)
			assert.Equal(t, table.err, err)
			assert.Equal(t, table.format, format)
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	var p palette.Palette
	for i := range p {
		p[i] = rgb555.Color{R: i * 16, G: 248 - i*8, B: 40}
	}
	s := testSpritesheet([]int{2, 1}, 7)
	m := s.Image(&p)

	for _, format := range []string{FormatPNG, FormatGIF, FormatBMP} {
		t.Run(format, func(t *testing.T) {
			b := new(bytes.Buffer)
			require.Nil(t, Encode(b, m, format))

			n, err := Decode(b)
			require.Nil(t, err)
			require.Equal(t, m.Bounds(), n.Bounds())

			// Lossless as the image has fewer than 256 colors
			for y := 0; y < m.Bounds().Dy(); y++ {
				for x := 0; x < m.Bounds().Dx(); x++ {
					if !assert.Equal(t, rgb555.Convert(m.At(x, y)), rgb555.Convert(n.At(x, y))) {
						return
					}
				}
			}
		})
	}

	assert.Equal(t, ErrUnknownFormat, Encode(new(bytes.Buffer), m, "tiff"))
}

func TestEncodeManyColors(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			m.Set(x, y, rgb555.Color{R: x * 8, G: y * 8, B: 0})
		}
	}
	assert.Nil(t, paletted(m))

	for _, format := range []string{FormatPNG, FormatGIF, FormatBMP} {
		b := new(bytes.Buffer)
		require.Nil(t, Encode(b, m, format))
		n, err := Decode(b)
		require.Nil(t, err)
		assert.Equal(t, m.Bounds(), n.Bounds())
	}

}

func TestEncodeAnimation(t *testing.T) {
	var p palette.Palette
	for i := range p {
		p[i] = rgb555.Color{R: i * 16, G: 8, B: 248 - i*8}
	}
	s := testSpritesheet([]int{3}, 4)
	frames := s[0].Images(&p)

	b := new(bytes.Buffer)
	require.Nil(t, EncodeAnimation(b, frames))

	g, err := gif.DecodeAll(b)
	require.Nil(t, err)
	require.Len(t, g.Image, 3)
	assert.Equal(t, []int{AnimationDelay, AnimationDelay, AnimationDelay}, g.Delay)

	for i, m := range g.Image {
		assert.Equal(t, frames[i].Bounds(), m.Bounds())
		for _, pt := range []image.Point{{0, 0}, {5, 9}, {47, 47}} {
			assert.Equal(t, rgb555.Convert(frames[i].At(pt.X, pt.Y)), rgb555.Convert(m.At(pt.X, pt.Y)))
		}
	}
}
