package sprite

import (
	"errors"
	"fmt"
)

var errFrameSize = errors.New("sprite: incorrect frame length")

// streamOrder maps the position of a section in the encoded frame to its
// index within the frame. Laid out as a frame, the stream positions are:
//
//	00 01 02 03 24 25
//	04 05 06 07 26 27
//	08 09 10 11 28 29
//	12 13 14 15 30 31
//	16 17 18 19 32 33
//	20 21 22 23 34 35
var streamOrder = [Sections]int{
	0, 1, 2, 3,
	6, 7, 8, 9,
	12, 13, 14, 15,
	18, 19, 20, 21,
	24, 25, 26, 27,
	30, 31, 32, 33,
	4, 5,
	10, 11,
	16, 17,
	22, 23,
	28, 29,
	34, 35,
}

// sectionOrder is the inverse of streamOrder, mapping a section index within
// the frame to its position in the encoded frame
var sectionOrder = [Sections]int{
	0, 1, 2, 3, 24, 25,
	4, 5, 6, 7, 26, 27,
	8, 9, 10, 11, 28, 29,
	12, 13, 14, 15, 30, 31,
	16, 17, 18, 19, 32, 33,
	20, 21, 22, 23, 34, 35,
}

func lowerNibble(b byte) uint8 {
	return b & 0x0f
}

func upperNibble(b byte) uint8 {
	return b >> 4
}

// DecodeFrame decodes a frame from exactly FrameBytes bytes. It panics if b
// is any other length.
func DecodeFrame(b []byte) (f Frame) {
	if len(b) != FrameBytes {
		panic(fmt.Sprintf("sprite: frame is %d bytes, not %d", len(b), FrameBytes))
	}

	for i, v := range b {
		s := &f[streamOrder[i/sectionBytes]]
		p := (i % sectionBytes) << 1
		x, y := p%SectionSize, p/SectionSize

		s[y][x+0] = lowerNibble(v)
		s[y][x+1] = upperNibble(v)
	}

	return
}

// EncodeFrame encodes a frame into FrameBytes bytes. Each palette index is
// masked to 4 bits.
func EncodeFrame(f *Frame) []byte {
	b := make([]byte, FrameBytes)

	for i := range f {
		s := &f[i]
		o := sectionOrder[i] * sectionBytes
		for y := 0; y < SectionSize; y++ {
			for x := 0; x < SectionSize; x += 2 {
				b[o+(y*SectionSize+x)>>1] = s[y][x+0]&0x0f | s[y][x+1]&0x0f<<4
			}
		}
	}

	return b
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (f *Frame) MarshalBinary() ([]byte, error) {
	return EncodeFrame(f), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
// Unlike DecodeFrame it returns an error for the wrong amount of data.
func (f *Frame) UnmarshalBinary(b []byte) error {
	if len(b) != FrameBytes {
		return errFrameSize
	}
	*f = DecodeFrame(b)
	return nil
}
