/*
Package sbrx is a library for editing the character sprites and palettes in
a Sonic Battle ROM.
*/
package sbrx

import (
	"image"
	"io"
	"log"
	"time"

	"github.com/bodgit/sbrx/character"
	"github.com/bodgit/sbrx/palette"
	"github.com/bodgit/sbrx/sprite"
)

// ROM is the minimal interface needed to read and write a ROM image. Calls
// must be safe to make from multiple goroutines, as *rom.File is.
type ROM interface {
	io.ReaderAt
	io.WriterAt
}

// Editor holds the decoded palettes and spritesheets for a ROM
type Editor struct {
	Palettes *palette.Manager
	Sprites  *sprite.Manager

	rom    ROM
	logger *log.Logger
}

// New returns an Editor for the given ROM
func New(rom ROM, logger *log.Logger) *Editor {
	return &Editor{
		Palettes: palette.NewManager(),
		Sprites:  sprite.NewManager(),
		rom:      rom,
		logger:   logger,
	}
}

// Read decodes the palette and spritesheet for a character from the ROM
func (e *Editor) Read(d *character.Descriptor) error {
	start := time.Now()

	if err := e.Palettes.Read(e.rom, d); err != nil {
		return err
	}
	if err := e.Sprites.Read(e.rom, d); err != nil {
		return err
	}

	e.logger.Printf("Read %s in %v\n", d.Name, time.Since(start))

	return nil
}

// Write encodes the palette and spritesheet for a character back to the ROM
func (e *Editor) Write(d *character.Descriptor) error {
	start := time.Now()

	if err := e.Palettes.Write(e.rom, d); err != nil {
		return err
	}
	if err := e.Sprites.Write(e.rom, d); err != nil {
		return err
	}

	e.logger.Printf("Wrote %s in %v\n", d.Name, time.Since(start))

	return nil
}

// Image returns the spritesheet for a character drawn as a single image
func (e *Editor) Image(d *character.Descriptor) (image.Image, error) {
	s, err := e.Sprites.Load(d.Name)
	if err != nil {
		return nil, err
	}

	p, err := e.Palettes.LoadColors(d.Name)
	if err != nil {
		return nil, err
	}

	return s.Image(&p), nil
}

// Animations returns every frame of every animation for a character drawn
// individually
func (e *Editor) Animations(d *character.Descriptor) ([][]*image.Paletted, error) {
	s, err := e.Sprites.Load(d.Name)
	if err != nil {
		return nil, err
	}

	p, err := e.Palettes.LoadColors(d.Name)
	if err != nil {
		return nil, err
	}

	animations := make([][]*image.Paletted, len(s))
	for i, a := range s {
		animations[i] = a.Images(&p)
	}

	return animations, nil
}

// SetImage replaces the spritesheet and palette for a character with those
// decoded from m. If reduce is set, the colors in m are first reduced so
// they fit in a single palette.
func (e *Editor) SetImage(d *character.Descriptor, m image.Image, reduce bool) error {
	if reduce {
		m = sprite.Reduce(m)
	}

	s, p, err := sprite.FromImage(m, d)
	if err != nil {
		return err
	}

	e.Sprites.Store(d.Name, s)
	e.Palettes.StoreColors(d.Name, p)

	return nil
}

// Stage checks that m decodes as the spritesheet for a character and then
// stores it in db for a later Apply. If reduce is set, the reduced image is
// stored.
func (e *Editor) Stage(db *DB, d *character.Descriptor, m image.Image, reduce bool) error {
	if reduce {
		m = sprite.Reduce(m)
	}

	if _, _, err := sprite.FromImage(m, d); err != nil {
		return err
	}

	if err := db.AddImage(d.Name, m); err != nil {
		return err
	}

	e.logger.Printf("Staged %s\n", d.Name)

	return nil
}
