package sbrx

import (
	"errors"
	"image"
	"image/draw"
	"io/ioutil"
	"log"
	"math/rand"
	"testing"

	"github.com/bodgit/sbrx/character"
	"github.com/bodgit/sbrx/palette"
	"github.com/bodgit/sbrx/rgb555"
	"github.com/bodgit/sbrx/rom"
	"github.com/bodgit/sbrx/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = log.New(ioutil.Discard, "", 0)

var testCharacters = []character.Descriptor{
	{
		Name:          "First",
		PaletteOffset: 0x000,
		SpriteOffset:  0x020,
		Frames:        []int{2, 1},
	},
	{
		Name:          "Second",
		PaletteOffset: 0x2000,
		SpriteOffset:  0x2020,
		Frames:        []int{1, 1, 2},
	},
}

func testPacked() (p palette.Packed) {
	for i := 1; i < palette.Colors; i++ {
		p[i] = rgb555.Packed(i<<10 | (16-i)<<5 | i)
	}
	return
}

// testSpritesheet returns random frames where every palette index appears in
// the first section in index order
func testSpritesheet(frames []int, seed int64) sprite.Spritesheet {
	r := rand.New(rand.NewSource(seed))
	s := make(sprite.Spritesheet, len(frames))
	for i, n := range frames {
		s[i] = make(sprite.Animation, n)
		for j := range s[i] {
			for y := 0; y < sprite.FramePixels; y++ {
				for x := 0; x < sprite.FramePixels; x++ {
					s[i][j].Set(x, y, uint8(r.Intn(palette.Colors)))
				}
			}
		}
	}
	for x := 0; x < palette.Colors-1; x++ {
		s[0][0][0][x/sprite.SectionSize][x%sprite.SectionSize] = uint8(x + 1)
	}
	return s
}

func testROM(t *testing.T, ds []character.Descriptor) *rom.File {
	f := rom.New(rom.NewBuffer(make([]byte, 0x4000)))
	for i := range ds {
		require.Nil(t, sprite.WriteSpritesheet(f, &ds[i], testSpritesheet(ds[i].Frames, int64(i))))
		_, err := f.WriteAt(palette.EncodeRaw(testPacked()), ds[i].PaletteOffset)
		require.Nil(t, err)
	}
	return f
}

func TestEditorRead(t *testing.T) {
	f := testROM(t, testCharacters)
	e := New(f, testLogger)

	d := &testCharacters[1]
	require.Nil(t, e.Read(d))

	p, err := e.Palettes.Load(d.Name)
	require.Nil(t, err)
	assert.Equal(t, testPacked(), p)

	s, err := e.Sprites.Load(d.Name)
	require.Nil(t, err)
	assert.Equal(t, testSpritesheet(d.Frames, 1), s)

	m, err := e.Image(d)
	require.Nil(t, err)
	assert.Equal(t, image.Rect(0, 0, 3*sprite.FramePixels, 2*sprite.FramePixels), m.Bounds())
}

func TestEditorNotRead(t *testing.T) {
	e := New(testROM(t, testCharacters), testLogger)

	_, err := e.Image(&testCharacters[0])
	assert.True(t, errors.Is(err, sprite.ErrNotFound))

	e.Sprites.Store(testCharacters[0].Name, testSpritesheet(testCharacters[0].Frames, 0))
	_, err = e.Image(&testCharacters[0])
	assert.True(t, errors.Is(err, palette.ErrNotFound))
}

func TestEditorRoundTrip(t *testing.T) {
	f := testROM(t, testCharacters)
	e := New(f, testLogger)

	d := &testCharacters[0]
	require.Nil(t, e.Read(d))

	m, err := e.Image(d)
	require.Nil(t, err)

	// Importing the exported image and writing it back changes nothing
	// other than the transparent color
	require.Nil(t, e.SetImage(d, m, false))
	require.Nil(t, e.Write(d))

	n := New(f, testLogger)
	require.Nil(t, n.Read(d))

	s, err := n.Sprites.Load(d.Name)
	require.Nil(t, err)
	assert.Equal(t, testSpritesheet(d.Frames, 0), s)

	p, err := n.Palettes.Load(d.Name)
	require.Nil(t, err)
	want := testPacked()
	want[0] = 0x7fe0
	assert.Equal(t, want, p)
}

func TestEditorSetImageOverflow(t *testing.T) {
	e := New(testROM(t, testCharacters), testLogger)
	d := &testCharacters[0]

	m := image.NewRGBA(image.Rect(0, 0, 2*sprite.FramePixels, 2*sprite.FramePixels))
	for y := 0; y < m.Bounds().Dy(); y++ {
		for x := 0; x < m.Bounds().Dx(); x++ {
			m.Set(x, y, rgb555.Color{R: x, G: y, B: 64})
		}
	}

	err := e.SetImage(d, m, false)
	assert.True(t, errors.Is(err, sprite.ErrPaletteOverflow))

	require.Nil(t, e.SetImage(d, m, true))
	s, err := e.Sprites.Load(d.Name)
	require.Nil(t, err)
	assert.Equal(t, d.Frames, s.Frames())
}

func TestEditorStage(t *testing.T) {
	db := testDB(t)
	e := New(testROM(t, testCharacters), testLogger)
	d := &testCharacters[0]

	// Transparent plus 16 further colors in the first row
	m := image.NewRGBA(image.Rect(0, 0, 2*sprite.FramePixels, 2*sprite.FramePixels))
	draw.Draw(m, m.Bounds(), image.NewUniform(sprite.MarkerEven), image.Point{}, draw.Src)
	for x := 0; x < palette.Colors; x++ {
		m.Set(x, 0, rgb555.Color{R: 8 * (x + 1), G: 0, B: 0})
	}

	var oe *sprite.OverflowError
	require.True(t, errors.As(e.Stage(db, d, m, false), &oe))
	assert.Equal(t, palette.Colors-1, oe.X)
	assert.Equal(t, 0, oe.Y)

	names, err := db.Names()
	require.Nil(t, err)
	assert.Empty(t, names)

	require.Nil(t, e.Stage(db, d, m, true))
	names, err = db.Names()
	require.Nil(t, err)
	assert.Equal(t, []string{d.Name}, names)

	staged, err := db.FindImage(d.Name)
	require.Nil(t, err)
	_, _, err = sprite.FromImage(staged, d)
	assert.Nil(t, err)
}

func TestEditorAnimations(t *testing.T) {
	e := New(testROM(t, testCharacters), testLogger)
	d := &testCharacters[1]

	_, err := e.Animations(d)
	assert.True(t, errors.Is(err, sprite.ErrNotFound))

	require.Nil(t, e.Read(d))
	animations, err := e.Animations(d)
	require.Nil(t, err)
	require.Len(t, animations, len(d.Frames))

	p := e.Palettes.ToRGB(testPacked())
	s := testSpritesheet(d.Frames, 1)
	for i, frames := range animations {
		assert.Len(t, frames, d.Frames[i])
		for j, m := range frames {
			assert.Equal(t, s[i][j].At(0, 0), m.ColorIndexAt(0, 0))
			assert.Equal(t, p[s[i][j].At(0, 0)], rgb555.Convert(m.At(0, 0)))
		}
	}
}
