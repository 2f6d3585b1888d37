package sbrx

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Supported image formats
const (
	FormatPNG = "png"
	FormatGIF = "gif"
	FormatBMP = "bmp"
)

// AnimationDelay is the delay between frames of an exported animation, in
// 100ths of a second
const AnimationDelay = 10

// ErrUnknownFormat is returned for an unsupported image format
var ErrUnknownFormat = errors.New("sbrx: unknown image format")

func checkFormat(format string) error {
	switch format {
	case FormatPNG, FormatGIF, FormatBMP:
		return nil
	default:
		return ErrUnknownFormat
	}
}

// FormatFromPath returns the image format implied by the file extension
func FormatFromPath(file string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))
	if err := checkFormat(f); err != nil {
		return "", err
	}
	return f, nil
}

// paletted returns m as an indexed image if it uses no more than 256
// colors, otherwise nil
func paletted(m image.Image) *image.Paletted {
	if pm, ok := m.(*image.Paletted); ok {
		return pm
	}

	b := m.Bounds()
	seen := make(map[color.Color]uint8)
	var p color.Palette
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(m.At(x, y))
			if _, ok := seen[c]; ok {
				continue
			}
			if len(p) == 256 {
				return nil
			}
			seen[c] = uint8(len(p))
			p = append(p, c)
		}
	}

	pm := image.NewPaletted(b, p)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pm.SetColorIndex(x, y, seen[color.RGBAModel.Convert(m.At(x, y))])
		}
	}
	return pm
}

// Encode writes m to w in the given format. Images with no more than 256
// colors are written as indexed images.
func Encode(w io.Writer, m image.Image, format string) error {
	if pm := paletted(m); pm != nil {
		m = pm
	}

	switch format {
	case FormatPNG:
		return png.Encode(w, m)
	case FormatGIF:
		if _, ok := m.(*image.Paletted); !ok {
			// Fall back to dithering against a standard palette
			return gif.Encode(w, m, &gif.Options{NumColors: 256, Drawer: draw.FloydSteinberg})
		}
		return gif.Encode(w, m, nil)
	case FormatBMP:
		return bmp.Encode(w, m)
	default:
		return ErrUnknownFormat
	}
}

// EncodeAnimation writes frames to w as a looping animated GIF
func EncodeAnimation(w io.Writer, frames []*image.Paletted) error {
	g := &gif.GIF{
		Image: frames,
		Delay: make([]int, len(frames)),
	}
	for i := range g.Delay {
		g.Delay[i] = AnimationDelay
	}
	return gif.EncodeAll(w, g)
}

// Decode reads an image in any supported format from r
func Decode(r io.Reader) (image.Image, error) {
	m, _, err := image.Decode(r)
	return m, err
}
