/*
Package character holds the static table describing where each Sonic Battle
character keeps its palette and sprites within the ROM.
*/
package character

import (
	"errors"
	"strings"
)

// FrameBytes is the size in bytes of a single frame of sprite data
const FrameBytes = 0x480

var (
	// ErrUnknown is returned when looking up a character that isn't in the
	// table
	ErrUnknown = errors.New("character: unknown character")
)

// Descriptor describes one character
type Descriptor struct {
	Name          string
	PaletteOffset int64
	SpriteOffset  int64
	// Frames holds the number of frames in each animation, in ROM order
	Frames []int
}

// Animation locates the frames of a single animation within the ROM
type Animation struct {
	Offset int64
	Frames int
}

// Animations returns the ROM offset and frame count of each animation.
// Animations are stored back to back starting at SpriteOffset.
func (d *Descriptor) Animations() []Animation {
	animations := make([]Animation, 0, len(d.Frames))
	var o int64
	for _, frames := range d.Frames {
		animations = append(animations, Animation{
			Offset: d.SpriteOffset + FrameBytes*o,
			Frames: frames,
		})
		o += int64(frames)
	}
	return animations
}

// MaxFrames returns the frame count of the longest animation
func (d *Descriptor) MaxFrames() (max int) {
	for _, frames := range d.Frames {
		if frames > max {
			max = frames
		}
	}
	return
}

// TotalFrames returns the number of frames across all animations
func (d *Descriptor) TotalFrames() (total int) {
	for _, frames := range d.Frames {
		total += frames
	}
	return
}

func find(ds []Descriptor, name string) (*Descriptor, error) {
	for i := range ds {
		if strings.EqualFold(ds[i].Name, name) {
			return &ds[i], nil
		}
	}
	return nil, ErrUnknown
}

// Find returns the character with the given name, ignoring case
func Find(name string) (*Descriptor, error) {
	return find(Characters, name)
}

// FindPalette returns the character or standalone palette with the given
// name, ignoring case. Characters are searched first.
func FindPalette(name string) (*Descriptor, error) {
	if d, err := find(Characters, name); err == nil {
		return d, nil
	}
	return find(Palettes, name)
}
