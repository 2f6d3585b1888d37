/*
Package sprite implements the tiled 4-bit sprite format used for character
animations.

Each frame is 48 by 48 pixels, split into a 6 by 6 grid of 8 by 8 pixel
sections. A frame is stored as 1152 bytes with each byte holding two pixels,
the left pixel in the lower nibble. The 64 pixels of a section are stored
contiguously in row order but the sections themselves are not stored in row
order; the left four columns of sections are stored first, row by row,
followed by the remaining two columns.
*/
package sprite

import "errors"

const (
	// SectionSize is the width and height of a section in pixels
	SectionSize = 8

	// FrameSize is the width and height of a frame in sections
	FrameSize = 6

	// Sections is the number of sections in a frame
	Sections = FrameSize * FrameSize

	// FramePixels is the width and height of a frame in pixels
	FramePixels = SectionSize * FrameSize

	sectionPixels = SectionSize * SectionSize
	sectionBytes  = sectionPixels >> 1

	// FrameBytes is the size in bytes of an encoded frame
	FrameBytes = Sections * sectionBytes
)

var (
	// ErrNotFound is returned when no spritesheet is stored for a
	// character
	ErrNotFound = errors.New("sprite: not found")
)

// Section is an 8 by 8 grid of palette indices, addressed as [y][x]
type Section [SectionSize][SectionSize]uint8

// Frame is a single image, made of sections in row order
type Frame [Sections]Section

// At returns the palette index of the pixel at x, y within the frame
func (f *Frame) At(x, y int) uint8 {
	return f[y/SectionSize*FrameSize+x/SectionSize][y%SectionSize][x%SectionSize]
}

// Set sets the palette index of the pixel at x, y within the frame
func (f *Frame) Set(x, y int, v uint8) {
	f[y/SectionSize*FrameSize+x/SectionSize][y%SectionSize][x%SectionSize] = v
}

// Animation is an ordered sequence of frames
type Animation []Frame

// Spritesheet holds every animation for a character
type Spritesheet []Animation

// MaxFrames returns the frame count of the longest animation
func (s Spritesheet) MaxFrames() (max int) {
	for _, a := range s {
		if len(a) > max {
			max = len(a)
		}
	}
	return
}

// Frames returns the number of frames in each animation
func (s Spritesheet) Frames() []int {
	frames := make([]int, len(s))
	for i, a := range s {
		frames[i] = len(a)
	}
	return frames
}
