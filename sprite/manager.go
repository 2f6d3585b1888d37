package sprite

import (
	"fmt"
	"io"
	"sync"

	"github.com/bodgit/sbrx/character"
)

// Manager stores the spritesheet for each character by name. It is safe for
// concurrent use.
type Manager struct {
	mu           sync.Mutex
	spritesheets map[string]Spritesheet
}

// NewManager returns an empty Manager
func NewManager() *Manager {
	return &Manager{
		spritesheets: make(map[string]Spritesheet),
	}
}

// Store sets the spritesheet for the named character
func (m *Manager) Store(name string, s Spritesheet) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.spritesheets[name] = s
}

// Load returns the spritesheet for the named character
func (m *Manager) Load(name string) (Spritesheet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.spritesheets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s, nil
}

// ReadSpritesheet reads every frame of every animation for a character from
// the ROM
func ReadSpritesheet(r io.ReaderAt, d *character.Descriptor) (Spritesheet, error) {
	animations := d.Animations()
	s := make(Spritesheet, len(animations))

	b := make([]byte, FrameBytes)
	for i, a := range animations {
		s[i] = make(Animation, a.Frames)
		for j := range s[i] {
			if _, err := r.ReadAt(b, a.Offset+int64(j*FrameBytes)); err != nil {
				return nil, err
			}
			s[i][j] = DecodeFrame(b)
		}
	}

	return s, nil
}

// WriteSpritesheet writes every frame of every animation to the ROM. The
// frames are written back to back starting at the sprite offset of d.
func WriteSpritesheet(w io.WriterAt, d *character.Descriptor, s Spritesheet) error {
	var frames int
	for _, a := range s {
		frames += len(a)
	}

	b := make([]byte, 0, frames*FrameBytes)
	for _, a := range s {
		for i := range a {
			b = append(b, EncodeFrame(&a[i])...)
		}
	}

	_, err := w.WriteAt(b, d.SpriteOffset)
	return err
}

// Read reads the spritesheet for a character from the ROM and stores it
func (m *Manager) Read(r io.ReaderAt, d *character.Descriptor) error {
	s, err := ReadSpritesheet(r, d)
	if err != nil {
		return err
	}
	m.Store(d.Name, s)
	return nil
}

// Write writes the stored spritesheet for a character back to the ROM
func (m *Manager) Write(w io.WriterAt, d *character.Descriptor) error {
	s, err := m.Load(d.Name)
	if err != nil {
		return err
	}
	return WriteSpritesheet(w, d, s)
}
